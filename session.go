/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Each browser tab opens its own websocket, and each websocket owns one
// scoreboard. Nothing is shared between tabs and nothing is kept once
// the socket closes.
//
// Wire protocol (JSON text frames):
// - client → server: {"type":"activate","key":"n12","values":{"n40":"5"}}
// - server → client: session_info (once), tree (after every change), error

package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/scorebox/scoreboard"
	"github.com/Seednode/scorebox/ui"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const (
	maxMessageSize = 64 << 10
	sendBuffer     = 8
)

// Messages coming from clients
type ClientMessage struct {
	Type   string            `json:"type"`             // "activate"
	Key    string            `json:"key,omitempty"`    // node that was activated
	Values map[string]string `json:"values,omitempty"` // current input contents, by node key
}

// SessionInfoMessage is sent immediately on connect.
type SessionInfoMessage struct {
	Type          string `json:"type"` // "session_info"
	SessionID     string `json:"session_id"`
	UnloadWarning string `json:"unload_warning"`
}

// TreeMessage carries the full document after every change.
type TreeMessage struct {
	Type     string       `json:"type"` // "tree"
	Document *ui.Document `json:"document"`
}

// ErrorMessage is for user-facing failures.
type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

type Session struct {
	id      string
	conn    *websocket.Conn
	send    chan []byte
	doc     *ui.Document
	tracker *Tracker

	mu         sync.RWMutex
	createdAt  time.Time
	lastActive time.Time
}

func newSession(cfg *Config, conn *websocket.Conn) *Session {
	now := time.Now()
	id := uuid.NewString()
	doc := ui.NewDocument()

	s := &Session{
		id:         id,
		conn:       conn,
		send:       make(chan []byte, sendBuffer),
		doc:        doc,
		createdAt:  now,
		lastActive: now,
	}

	s.tracker = NewTracker(scoreboard.New(), doc, func(format string, args ...any) {
		logf(cfg, "SCORES: "+format+" in %s", append(args, id)...)
	})

	return s
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastActive
}

// queue marshals msg on the calling goroutine, so the document is never
// read concurrently with a mutation.
func (s *Session) queue(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case s.send <- data:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

func (s *Session) sendTree() error {
	return s.queue(TreeMessage{
		Type:     "tree",
		Document: s.doc,
	})
}

// handle applies one client message. It only ever runs on the read
// goroutine.
func (s *Session) handle(cfg *Config, msg ClientMessage) error {
	switch msg.Type {
	case "activate":
		s.doc.SetValues(msg.Values)

		if err := s.doc.Activate(msg.Key); err != nil {
			if errors.Is(err, ui.ErrUnknownNode) {
				logf(cfg, "SESSION: Ignored stale activation %q in %s", msg.Key, s.id)
				return s.sendTree()
			}
			return err
		}

		return s.sendTree()
	default:
		return s.queue(ErrorMessage{
			Type:    "error",
			Message: "Unknown message type.",
		})
	}
}

func (s *Session) readPump(cfg *Config, sm *SessionManager) {
	defer func() {
		sm.remove(s.id)
		close(s.send)
		_ = s.conn.Close()
		logf(cfg, "SESSION: Closed %s after %s", s.id, time.Since(s.createdAt).Round(time.Second))
	}()

	s.conn.SetReadLimit(maxMessageSize)

	for {
		var msg ClientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return
		}

		s.touch()

		if err := s.handle(cfg, msg); err != nil {
			logf(cfg, "ERROR: %s: %v", s.id, err)
			return
		}
	}
}

func (s *Session) writePump() {
	defer s.conn.Close()

	for data := range s.send {
		_ = s.conn.SetWriteDeadline(time.Now().Add(timeout))
		if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// SessionManager tracks open sessions so idle ones can be reaped and all
// of them closed on shutdown.
type SessionManager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	done        chan struct{}
}

func newSessionManager(idleTimeout time.Duration) *SessionManager {
	sm := &SessionManager{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		done:        make(chan struct{}),
	}
	if idleTimeout > 0 {
		go sm.reaperLoop()
	}
	return sm
}

func (sm *SessionManager) add(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.sessions[s.id] = s
}

func (sm *SessionManager) remove(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, id)
}

func (sm *SessionManager) count() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return len(sm.sessions)
}

// reaperLoop periodically closes sessions that have been idle longer than idleTimeout.
func (sm *SessionManager) reaperLoop() {
	ticker := time.NewTicker(sm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-sm.done:
			return
		case <-ticker.C:
			sm.reap(time.Now().Add(-sm.idleTimeout))
		}
	}
}

func (sm *SessionManager) reap(cutoff time.Time) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	reaped := 0
	for id, s := range sm.sessions {
		if s.idleSince().Before(cutoff) {
			delete(sm.sessions, id)
			_ = s.conn.Close()
			reaped++
		}
	}

	return reaped
}

// closeAll disconnects every session and stops the reaper.
func (sm *SessionManager) closeAll() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	select {
	case <-sm.done:
	default:
		close(sm.done)
	}

	for id, s := range sm.sessions {
		_ = s.conn.Close()
		delete(sm.sessions, id)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveSession(cfg *Config, sm *SessionManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "ERROR: Upgrade for %s failed: %v", realIP(r), err)
			return
		}

		s := newSession(cfg, conn)
		sm.add(s)

		logf(cfg, "SESSION: Opened %s for %s", s.id, realIP(r))

		go s.writePump()

		if err := s.queue(SessionInfoMessage{
			Type:          "session_info",
			SessionID:     s.id,
			UnloadWarning: unloadWarning,
		}); err == nil {
			_ = s.sendTree()
		}

		s.readPump(cfg, sm)
	}
}

// QR handler: generates a PNG QR code pointing at the app root, so a
// second device can open its own tracker.
func serveQR(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		url := scheme + "://" + r.Host + strings.TrimSuffix(cfg.prefix, "/") + "/"

		const qrSize = 320
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		securityHeaders(cfg, w)

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}
