package api

import (
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// websocketHandler upgrades the request and hands the connection to the
// event stream manager, which owns it until the client disconnects.
func (s *Server) websocketHandler(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
