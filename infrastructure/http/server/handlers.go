package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"chat-rooms/domain"

	"github.com/labstack/echo/v4"
)

// sendRequest is the inbound shape of a chat message. The core assigns id,
// kind and timestamp itself, so the wire only carries these three fields.
type sendRequest struct {
	Content string `json:"content" validate:"required"`
	Sender  string `json:"sender" validate:"required"`
	Room    string `json:"room" validate:"required"`
}

type leaveRequest struct {
	Username string `json:"username" validate:"required"`
	Room     string `json:"room"`
}

func (s *Server) handleLiveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleJoin resolves the requested identity and broadcasts the JOIN system
// message. Username and room are both optional; the core fills them in.
func (s *Server) handleJoin(c echo.Context) error {
	var req domain.JoinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid join request")
	}
	return c.JSON(http.StatusOK, s.chat.Join(req))
}

// handleStream keeps a Server-Sent Events connection open, pushing each
// message of the room as one data frame until the client disconnects.
func (s *Server) handleStream(c echo.Context) error {
	req := domain.JoinRequest{
		Username: c.QueryParam("username"),
		Room:     c.QueryParam("room"),
	}

	sub := s.chat.Subscribe(req)
	defer sub.Close()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Stream client disconnected",
				"username", req.Username, "room", req.Room)
			return nil
		case msg, ok := <-sub.C():
			if !ok {
				return nil
			}
			data, err := json.Marshal(msg)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
				return err
			}
			resp.Flush()
		}
	}
}

// handleMessage accepts a fire-and-forget send. Required-field validation
// lives here; the core itself never rejects input.
func (s *Server) handleMessage(c echo.Context) error {
	var req sendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message")
	}
	if err := s.validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.chat.Send(domain.Message{Content: req.Content, Sender: req.Sender, Room: req.Room})
	return c.NoContent(http.StatusOK)
}

func (s *Server) handleLeave(c echo.Context) error {
	var req leaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid leave request")
	}
	if err := s.validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.chat.Leave(domain.JoinRequest{Username: req.Username, Room: req.Room})
	return c.NoContent(http.StatusOK)
}
