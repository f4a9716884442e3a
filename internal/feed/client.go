package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/neoncube"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// Action is a command from a renderer.
type Action struct {
	Type  string  `json:"type"` // "rotate", "hint", "upgrade", "prestige" or "snapshot"
	Axis  string  `json:"axis,omitempty"`
	Layer float64 `json:"layer,omitempty"`
	Turn  int     `json:"turn,omitempty"`
}

var errUnknownAction = errors.New("feed: unknown action")

// Client is one renderer connection.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	remote string
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		remote: conn.RemoteAddr().String(),
	}
}

// readPump applies actions from the connection until it closes.
func (c *Client) readPump() {
	defer func() {
		c.hub.detach(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).Warn("renderer read failed")
			}
			return
		}

		var action Action
		if err := json.Unmarshal(message, &action); err != nil {
			c.hub.send(c, Message{Type: "error", Error: "malformed action"})
			continue
		}

		if err := c.apply(action); err != nil {
			c.hub.logger.WithFields(logrus.Fields{
				"remote": c.remote,
				"action": action.Type,
			}).WithError(err).Debug("renderer action rejected")
			c.hub.send(c, Message{Type: "error", Error: err.Error()})
		}
	}
}

func (c *Client) apply(action Action) error {
	ctrl := c.hub.ctrl
	switch action.Type {
	case "rotate":
		m, err := c.move(action)
		if err != nil {
			return err
		}
		_, err = ctrl.Rotate(m)
		return err
	case "hint":
		_, err := ctrl.Hint()
		return err
	case "upgrade":
		_, err := ctrl.AcceptUpgrade()
		return err
	case "prestige":
		return ctrl.Prestige()
	case "snapshot":
		snap := ctrl.Snapshot()
		c.hub.send(c, Message{Type: "snapshot", Snapshot: &snap})
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownAction, action.Type)
	}
}

// move builds a move from renderer input. Renderers work in floating point,
// so the layer is snapped to the lattice first; drift is logged, not fatal.
func (c *Client) move(action Action) (neoncube.Move, error) {
	axis, err := neoncube.ParseAxis(action.Axis)
	if err != nil {
		return neoncube.Move{}, err
	}
	turn := neoncube.Turn(action.Turn)
	if !turn.Valid() {
		return neoncube.Move{}, fmt.Errorf("%w: %d", neoncube.ErrInvalidTurn, action.Turn)
	}

	layer, err := neoncube.SnapCoordinate(action.Layer, c.hub.ctrl.Size())
	if err != nil {
		if !errors.Is(err, neoncube.ErrGeometryDrift) {
			return neoncube.Move{}, err
		}
		c.hub.logger.WithFields(logrus.Fields{
			"remote": c.remote,
			"layer":  action.Layer,
		}).Warn(err.Error())
	}

	return neoncube.Move{Axis: axis, Layer: layer, Turn: turn}, nil
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
