package citygrid

import (
	"image"
	"math"
	"testing"
	"time"
)

func TestSimulateGrowth(t *testing.T) {
	c, _, _ := newTestCity(t)
	c.TryPlaceBuilding(Residential, image.Pt(0, 0), 0)
	c.TryPlaceBuilding(Residential, image.Pt(1, 0), 0)
	c.TryPlaceBuilding(Commercial, image.Pt(2, 0), 0)
	c.TryPlaceBuilding(Commercial, image.Pt(3, 0), 0)

	if c.HousingCapacity() != 20 || c.Jobs() != 10 {
		t.Fatalf("expected housing 20 jobs 10, got %d %d", c.HousingCapacity(), c.Jobs())
	}

	c.Simulate(time.Second)

	// 0.01 * min(20, 10) * 1s
	if math.Abs(c.Stats.Population-0.1) > 1e-9 {
		t.Errorf("expected population 0.1, got %v", c.Stats.Population)
	}
}

func TestSimulateNoJobs(t *testing.T) {
	c, _, _ := newTestCity(t)
	c.TryPlaceBuilding(Residential, image.Pt(0, 0), 0)

	c.Simulate(time.Minute)

	if c.Stats.Population != 0 {
		t.Errorf("expected no growth without jobs, got %v", c.Stats.Population)
	}
}

func TestSimulateCapped(t *testing.T) {
	c, _, _ := newTestCity(t)
	c.TryPlaceBuilding(Residential, image.Pt(0, 0), 0)
	c.TryPlaceBuilding(Commercial, image.Pt(1, 0), 0)
	c.Stats.Population = 5

	c.Simulate(time.Hour)

	if c.Stats.Population != 5 {
		t.Errorf("expected population to stay at jobs limit 5, got %v", c.Stats.Population)
	}
}
