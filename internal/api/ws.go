package api

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"

	"lectura-cli/internal/models"
)

// JobEvent is one decoded push from the backend's job stream.
type JobEvent struct {
	Status    *models.StatusUpdate
	Completed *models.CompletedEvent
	Failed    *models.ErrorEvent
}

// JobStream is the client end of the backend's WebSocket job channel.
// The backend authenticates the connection via a token query param.
type JobStream struct {
	conn *websocket.Conn
}

func DialJobStream(ctx context.Context, wsURL, token string) (*JobStream, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL+"?token="+token, nil)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return &JobStream{conn: conn}, nil
}

// Next blocks for the next event. Unknown message types are skipped so
// newer backends can add push types without breaking older clients.
func (s *JobStream) Next() (*JobEvent, error) {
	for {
		var msg models.WSMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			return nil, err
		}

		switch msg.Type {
		case "status_update":
			var ev models.StatusUpdate
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				continue
			}
			return &JobEvent{Status: &ev}, nil
		case "completed":
			var ev models.CompletedEvent
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				continue
			}
			return &JobEvent{Completed: &ev}, nil
		case "error":
			var ev models.ErrorEvent
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				continue
			}
			return &JobEvent{Failed: &ev}, nil
		}
	}
}

func (s *JobStream) Close() error {
	return s.conn.Close()
}
