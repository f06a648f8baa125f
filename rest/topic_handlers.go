package rest

import (
	"net/http"
	"strings"

	"update-sync/di"
	"update-sync/domain"

	"github.com/labstack/echo/v4"
)

func registerTopicRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/topics", handleGetTopics(container))
	v1.GET("/topics/:id", handleGetTopic(container))
	v1.PUT("/topics/followed", handleSetFollowedTopics(container))
	v1.PUT("/topics/:id/follow", handleFollowTopic(container, true))
	v1.DELETE("/topics/:id/follow", handleFollowTopic(container, false))
}

func handleGetTopics(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		sortBy := domain.TopicSortNone
		switch strings.ToLower(c.QueryParam("sort")) {
		case "", "none":
		case "name":
			sortBy = domain.TopicSortName
		default:
			return handleValidationError(c, "sort must be name or none", "sort", c.QueryParam("sort"))
		}

		topics, err := snapshot(c, container.FollowableTopicsUsecase.Execute(sortBy))
		if err != nil {
			return handleError(c, err, "GetTopics")
		}
		return c.JSON(http.StatusOK, topics)
	}
}

func handleGetTopic(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		topic, err := snapshot(c, container.TopicsRepository.GetTopic(c.Param("id")))
		if err != nil {
			return handleError(c, err, "GetTopic")
		}
		return c.JSON(http.StatusOK, topic)
	}
}

func handleSetFollowedTopics(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req FollowedTopicsRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}
		err := container.UserDataRepository.SetFollowedTopicIDs(c.Request().Context(), domain.NewIDSet(req.IDs...))
		if err != nil {
			return handleError(c, err, "SetFollowedTopicIDs")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handleFollowTopic(container *di.ApplicationComponents, followed bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := container.UserDataRepository.SetTopicIDFollowed(c.Request().Context(), c.Param("id"), followed); err != nil {
			return handleError(c, err, "SetTopicIDFollowed")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
