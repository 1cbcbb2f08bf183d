package game_player

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"
	"unicode/utf8"

	sgs_errors "github.com/gunnermanx/worldserver/game_server/errors"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"nhooyr.io/websocket"
)

const (
	DEFAULT_SEND_BUFFER_SIZE = 256
	DEFAULT_WRITE_TIMEOUT    = 5 * time.Second
	DEFAULT_MAX_FRAME_BYTES  = 1 << 20
)

type Options struct {
	SendBufferSize int
	WriteTimeout   time.Duration
	OriginPatterns []string
	// Larger inbound frames close the connection with StatusMessageTooBig
	MaxFrameBytes int64
}

// SGSGamePlayer models a player connected to the world
// and contains the websocket connection used to communicate between the client and server.
// Outbound frames are queued and written by a dedicated goroutine so a slow client
// never holds up the caller.
type SGSGamePlayer struct {
	ID     string
	WSConn *websocket.Conn
	Logger *logrus.Entry

	RWCtx       context.Context
	RWCtxCancel context.CancelFunc

	sendQueue    chan []byte
	writeTimeout time.Duration
	closeOnce    sync.Once
}

func NewSGSGamePlayer(
	id string,
	logger *logrus.Logger,
	w http.ResponseWriter,
	r *http.Request,
	opts Options,
) (p *SGSGamePlayer, err error) {
	var conn *websocket.Conn
	if conn, err = websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: opts.OriginPatterns,
	}); err != nil {
		err = errors.Wrap(err, "failed creating player")
		return
	}
	p = newSGSGamePlayer(id, logger, conn, opts)
	return
}

func newSGSGamePlayer(id string, logger *logrus.Logger, conn *websocket.Conn, opts Options) (p *SGSGamePlayer) {
	if opts.SendBufferSize <= 0 {
		opts.SendBufferSize = DEFAULT_SEND_BUFFER_SIZE
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = DEFAULT_WRITE_TIMEOUT
	}
	if opts.MaxFrameBytes <= 0 {
		opts.MaxFrameBytes = DEFAULT_MAX_FRAME_BYTES
	}
	conn.SetReadLimit(opts.MaxFrameBytes)

	p = &SGSGamePlayer{
		ID:           id,
		WSConn:       conn,
		Logger:       logger.WithField("playerID", id),
		sendQueue:    make(chan []byte, opts.SendBufferSize),
		writeTimeout: opts.WriteTimeout,
	}
	p.RWCtx, p.RWCtxCancel = context.WithCancel(context.Background())

	go p.writePump()
	return
}

func (p *SGSGamePlayer) GetID() string {
	return p.ID
}

func (p *SGSGamePlayer) GetContext() context.Context {
	return p.RWCtx
}

func (p *SGSGamePlayer) IsOpen() bool {
	return p.RWCtx.Err() == nil
}

// Read returns the next text frame from the client. Binary frames are
// not part of the protocol and are skipped.
func (p *SGSGamePlayer) Read() (data []byte, err error) {
	var msgType websocket.MessageType
	for {
		if msgType, data, err = p.WSConn.Read(p.RWCtx); err != nil {
			status := websocket.CloseStatus(err)
			switch {
			case errors.Is(err, context.Canceled):
				err = sgs_errors.ErrContextCancelled
			case status == websocket.StatusNormalClosure, status == websocket.StatusGoingAway, errors.Is(err, io.EOF):
				err = sgs_errors.ErrPlayerConnectionClosed
			default:
				err = errors.Wrap(sgs_errors.ErrPlayerConnectionLost, err.Error())
			}
			data = nil
			return
		}
		if msgType == websocket.MessageText {
			return
		}
		p.Logger.WithField("bytes", len(data)).Debug("dropped binary message from player")
	}
}

func (p *SGSGamePlayer) Send(data []byte) (err error) {
	if !p.IsOpen() {
		err = sgs_errors.ErrPlayerConnectionClosed
		return
	}
	select {
	case p.sendQueue <- data:
	default:
		err = sgs_errors.ErrPlayerSendBufferFull
	}
	return
}

func (p *SGSGamePlayer) writePump() {
	for {
		select {
		case <-p.RWCtx.Done():
			return
		case data := <-p.sendQueue:
			ctx, cancel := context.WithTimeout(p.RWCtx, p.writeTimeout)
			err := p.WSConn.Write(ctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				if p.IsOpen() {
					p.Logger.WithField("error", err.Error()).Debug("failed writing message to player")
					p.CloseConnectionWithError(err)
				}
				return
			}
		}
	}
}

func (p *SGSGamePlayer) CloseConnection() {
	p.close(websocket.StatusNormalClosure, "player connection closed")
}

func (p *SGSGamePlayer) CloseConnectionWithError(err error) {
	p.close(websocket.StatusInternalError, closeReason(err))
}

// close performs the close handshake before cancelling RWCtx, since cancelling
// an in-flight Read tears the connection down without a close frame
func (p *SGSGamePlayer) close(code websocket.StatusCode, reason string) {
	p.closeOnce.Do(func() {
		if err := p.WSConn.Close(code, reason); err != nil {
			p.Logger.WithField("error", err.Error()).Debug("close handshake did not complete")
		}
		p.RWCtxCancel()
	})
}

// close reasons must fit in a single control frame and stay valid UTF-8
func closeReason(err error) string {
	const maxLen = 120
	reason := err.Error()
	if len(reason) <= maxLen {
		return reason
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(reason[cut]) {
		cut--
	}
	return reason[:cut]
}
