// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/SoftbearStudios/crater/server/logger"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	socketWriteTimeout = 5 * time.Second
	socketIdleTimeout  = 60 * time.Second
	socketPingInterval = socketIdleTimeout * 4 / 5

	// Explosions start being thinned out beyond this many queued outbounds.
	socketCongestionThreshold = 5
	// A socket this far behind is disconnected. Terrain snapshots are large.
	socketBufferSize = 16

	// Inbounds are tiny, terrain snapshots of wide terrains are tens of kilobytes.
	socketReadLimit       = 512
	socketWriteBufferSize = 16384
)

var upgrader = websocket.Upgrader{
	CheckOrigin:      func(*http.Request) bool { return true },
	HandshakeTimeout: time.Second,
	ReadBufferSize:   socketReadLimit,
	WriteBufferSize:  socketWriteBufferSize,
}

var errSocketClosed = errors.New("hub closed socket")

// SocketClient relays hub outbounds to a websocket and forwards the inbounds it reads
// from the websocket to the hub.
type SocketClient struct {
	membership
	hub     *Hub // read by the pumps, unlike membership.hub
	conn    *websocket.Conn
	send    chan outbound
	once    sync.Once
	counter int
}

// NewSocketClient wraps conn. It does nothing until the hub attaches it.
func NewSocketClient(hub *Hub, conn *websocket.Conn) *SocketClient {
	return &SocketClient{
		hub:  hub,
		conn: conn,
		send: make(chan outbound, socketBufferSize),
	}
}

func (client *SocketClient) start() {
	go client.transmit()
	go client.receive()
}

// stop ends transmit, which closes the connection.
func (client *SocketClient) stop() {
	close(client.send)
}

// Destroy closes the connection and detaches the client.
func (client *SocketClient) Destroy() {
	client.once.Do(func() {
		client.hub.leave(client)
		_ = client.conn.Close()
	})
}

// Send queues out. Under congestion, a growing share of explosions is skipped, but terrain
// is always queued since each snapshot is complete. A full queue destroys the client.
func (client *SocketClient) Send(out outbound) {
	client.counter++
	if _, explosion := out.(Explosion); explosion {
		if excess := len(client.send) - socketCongestionThreshold; excess > 1 && client.counter%excess != 0 {
			logger.Log.Debug("socket congested, skipping explosion")
			return
		}
	}

	select {
	case client.send <- out:
	default:
		logger.Log.Info("socket too far behind")
		client.Destroy()
	}
}

// receive forwards inbounds until the connection fails.
func (client *SocketClient) receive() {
	defer client.Destroy()

	client.conn.SetReadLimit(socketReadLimit)
	extend := func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(socketIdleTimeout))
	}
	_ = extend("")
	client.conn.SetPongHandler(extend)

	for {
		in, err := client.readInbound()
		if err != nil {
			if websocket.IsUnexpectedCloseError(errors.Cause(err), websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Info("socket read failed", zap.Error(err))
			} else {
				logger.Log.Debug("socket read ended", zap.Error(err))
			}
			return
		}

		if invalid, ok := in.(InvalidInbound); ok {
			invalid.Inbound(client.hub, client)
			continue
		}

		select {
		case client.hub.inbound <- SignedInbound{Client: client, inbound: in}:
		case <-client.hub.done:
			return
		}
	}
}

func (client *SocketClient) readInbound() (inbound, error) {
	_, r, err := client.conn.NextReader()
	if err != nil {
		return nil, errors.Wrap(err, "next reader")
	}

	var message Message
	if err := json.NewDecoder(r).Decode(&message); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return message.Data.(inbound), nil
}

// transmit writes queued outbounds and pings until the hub stops the client or a write fails.
func (client *SocketClient) transmit() {
	ping := time.NewTicker(socketPingInterval)
	defer func() {
		ping.Stop()
		client.Destroy()
	}()

	for {
		var err error
		select {
		case out, ok := <-client.send:
			if !ok {
				err = errSocketClosed
				_ = client.conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(socketWriteTimeout))
				break
			}
			err = client.writeOutbound(out)
		case <-ping.C:
			err = client.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(socketWriteTimeout))
		}

		if err != nil {
			logger.Log.Debug("socket write ended", zap.Error(err))
			return
		}
	}
}

func (client *SocketClient) writeOutbound(out outbound) error {
	_ = client.conn.SetWriteDeadline(time.Now().Add(socketWriteTimeout))

	w, err := client.conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return errors.Wrap(err, "next writer")
	}
	if err := json.NewEncoder(w).Encode(Message{Data: out}); err != nil {
		_ = w.Close()
		return errors.Wrap(err, "encode")
	}
	return errors.Wrap(w.Close(), "flush")
}
