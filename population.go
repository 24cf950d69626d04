package citygrid

import (
	"math"
	"time"
)

const (
	// housing each residential building provides
	housingPerResidential = 10

	// jobs each commercial building provides
	jobsPerCommercial = 5

	// fraction of the remaining gap filled per second
	growthRate = 0.01
)

// HousingCapacity returns how many people the city can house
func (c *City) HousingCapacity() int {
	return c.Stats.Count(Residential) * housingPerResidential
}

// Jobs returns how many jobs the city provides
func (c *City) Jobs() int {
	return c.Stats.Count(Commercial) * jobsPerCommercial
}

// Simulate advances population by dt.
// People move in while there is both housing & work for them; the rate
// is proportional to whichever of the two is scarcer.
func (c *City) Simulate(dt time.Duration) {
	housing := float64(c.HousingCapacity())
	jobs := float64(c.Jobs())
	pop := c.Stats.Population

	if pop >= housing || pop >= jobs {
		return
	}
	c.Stats.Population += growthRate * math.Min(housing-pop, jobs-pop) * dt.Seconds()
}
