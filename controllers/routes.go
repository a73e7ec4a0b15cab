package controllers

func (s *Server) initializeRoutes() {

	api := s.Router.Group("/api")
	{
		// Users routes
		api.GET("/users", s.GetUsers)
		api.GET("/users/:id", s.GetUser)
		api.GET("/users/:id/posts", s.GetUserPosts)
		api.GET("/users/:id/followers", s.GetFollowers)
		api.GET("/users/:id/following", s.GetFollowing)

		// Posts routes
		api.GET("/posts", s.GetPosts)
		api.POST("/posts", s.CreatePost)

		// Like routes
		api.POST("/posts/:id/like", s.LikePost)

		// Comments routes
		api.POST("/posts/:id/comment", s.CreateComment)
		api.GET("/posts/:id/comments", s.GetComments)

		// Follow routes
		api.POST("/follow", s.FollowUser)
		api.POST("/unfollow", s.UnfollowUser)
	}

	// Static frontend
	s.Router.StaticFile("/", "public/index.html")
	s.Router.StaticFile("/app.js", "public/app.js")
}
