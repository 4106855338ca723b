package server

func (s *Server) registerRoutes() {
	s.echo.GET("/health/live", s.handleLiveness)

	api := s.echo.Group("/api/chat")
	api.POST("/join", s.handleJoin)
	api.GET("/stream", s.handleStream)
	api.POST("/message", s.handleMessage)
	api.POST("/leave", s.handleLeave)
}
