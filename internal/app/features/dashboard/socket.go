package dashboard

import (
	"context"
	"encoding/json"
	"html/template"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/statsapi"
	"github.com/saalesgu/wadua-ETL-ecommerce/internal/app/system/timeouts"
)

// Frame types on the dashboard socket.
const (
	FramePane = "pane" // server → page: replace a container
	FramePlot = "plot" // server → page: draw a chart
	FrameTab  = "tab"  // page → server: a tab was shown
)

// Frame is the JSON message exchanged with the page script.
type Frame struct {
	Type      string          `json:"type"`
	Container string          `json:"container,omitempty"`
	HTML      string          `json:"html,omitempty"`
	Mount     string          `json:"mount,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Layout    json.RawMessage `json:"layout,omitempty"`
	Target    string          `json:"target,omitempty"`
}

// socketSurface draws on a page through its websocket.
type socketSurface struct {
	mu   sync.Mutex // gorilla allows one concurrent writer
	conn *websocket.Conn
}

func (s *socketSurface) Replace(container string, markup template.HTML) error {
	return s.send(Frame{Type: FramePane, Container: container, HTML: string(markup)})
}

func (s *socketSurface) Plot(mount string, spec statsapi.ChartSpec) error {
	return s.send(Frame{Type: FramePlot, Mount: mount, Data: spec.Data, Layout: spec.Layout})
}

func (s *socketSurface) send(f Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(timeouts.Write())); err != nil {
		return err
	}
	return s.conn.WriteJSON(f)
}

// readTabs feeds tab signals from the page to ctl until the socket closes.
func readTabs(ctx context.Context, conn *websocket.Conn, ctl *Controller) error {
	for {
		var f Frame
		if err := conn.ReadJSON(&f); err != nil {
			return err
		}
		if f.Type == FrameTab {
			ctl.Activate(ctx, f.Target)
		}
	}
}
