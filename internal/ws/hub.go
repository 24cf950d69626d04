// Package ws fans messages between websocket clients & a single consumer.
//
// Every inbound message from every client arrives on one channel (Hub.Inbox)
// so the consumer can apply them strictly one at a time.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/voidshard/citygrid"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	// EventConnected is put on the inbox when a client connects
	EventConnected = "connected"

	// EventDisconnected is put on the inbox when a client goes away
	EventDisconnected = "disconnected"

	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 128
)

// Envelope wraps every message in both directions
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message is an Envelope received from a client
type Message struct {
	Client   *Client
	Envelope Envelope
}

// outbound is a message for a single client
type outbound struct {
	client *Client
	msg    []byte
}

// Client is a single websocket connection
type Client struct {
	// ID is unique to this connection
	ID string

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected clients
type Hub struct {
	log      citygrid.Logger
	upgrader websocket.Upgrader

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	direct     chan *outbound
	inbox      chan *Message

	// closed when Run returns
	done chan struct{}
}

// NewHub returns a hub; call Run to start it
func NewHub(log citygrid.Logger) *Hub {
	if log == nil {
		log = citygrid.DefaultConfig().Logger
	}
	return &Hub{
		log:        log,
		upgrader:   websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		clients:    map[*Client]bool{},
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		direct:     make(chan *outbound, 256),
		inbox:      make(chan *Message, 256),
		done:       make(chan struct{}),
	}
}

// Inbox returns every message from every client, in arrival order
func (h *Hub) Inbox() <-chan *Message {
	return h.inbox
}

// Run services the hub until the context is done
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for c := range h.clients {
			h.drop(c)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			h.drop(c)
		case msg := <-h.broadcast:
			for c := range h.clients {
				h.push(c, msg)
			}
		case out := <-h.direct:
			if h.clients[out.client] {
				h.push(out.client, out.msg)
			}
		}
	}
}

// push queues msg for c, dropping the client if it can't keep up
func (h *Hub) push(c *Client, msg []byte) {
	select {
	case c.send <- msg:
	default:
		h.log.Printf("client %s is too slow, disconnecting", c.ID)
		h.drop(c)
	}
}

// drop forgets a client & stops its writer
func (h *Hub) drop(c *Client) {
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Broadcast sends a message to every client
func (h *Hub) Broadcast(typ string, v interface{}) error {
	msg, err := encode(typ, v)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
	return nil
}

// Send sends a message to a single client. Sending to a client that has
// gone away is not an error.
func (h *Hub) Send(c *Client, typ string, v interface{}) error {
	msg, err := encode(typ, v)
	if err != nil {
		return err
	}
	select {
	case h.direct <- &outbound{client: c, msg: msg}:
	case <-h.done:
	}
	return nil
}

// encode wraps v in an Envelope
func encode(typ string, v interface{}) ([]byte, error) {
	env := Envelope{Type: typ}
	if v != nil {
		payload, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s payload", typ)
		}
		env.Payload = payload
	}
	return json.Marshal(env)
}

// ServeHTTP upgrades the connection & registers a new client
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Printf("failed to upgrade connection: %v", err)
		return
	}

	c := &Client{
		ID:   uuid.New().String(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}
	h.deliver(&Message{Client: c, Envelope: Envelope{Type: EventConnected}})

	go c.writer()
	go c.reader()
}

// deliver puts a message on the inbox unless the hub has stopped
func (h *Hub) deliver(m *Message) {
	select {
	case h.inbox <- m:
	case <-h.done:
	}
}

// reader pushes everything the client sends onto the hub inbox
func (c *Client) reader() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
		c.hub.deliver(&Message{Client: c, Envelope: Envelope{Type: EventDisconnected}})
	}()

	c.conn.SetReadLimit(maxMessageSize)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		env := Envelope{}
		err = json.Unmarshal(data, &env)
		if err != nil {
			c.hub.log.Printf("client %s sent bad message: %v", c.ID, err)
			continue
		}
		c.hub.deliver(&Message{Client: c, Envelope: env})
	}
}

// writer sends queued messages until the hub closes our channel
func (c *Client) writer() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			c.hub.log.Printf("client %s: failed to set write deadline: %v", c.ID, err)
			return
		}
		err := c.conn.WriteMessage(websocket.TextMessage, msg)
		if err != nil {
			c.hub.log.Printf("client %s: failed to write message: %v", c.ID, err)
			return
		}
	}
	err := c.conn.WriteMessage(websocket.CloseMessage, []byte{})
	if err != nil {
		c.hub.log.Printf("client %s: failed to write close message: %v", c.ID, err)
	}
}
