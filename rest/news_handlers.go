package rest

import (
	"net/http"

	"update-sync/config"
	"update-sync/di"
	"update-sync/domain"

	"github.com/labstack/echo/v4"
)

func registerNewsRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/news", handleGetNews(container))
	v1.GET("/news/followed", handleGetFollowedNews(container))
	v1.GET("/news/followed/stream", handleFollowedNewsStream(container, cfg))
	v1.GET("/news/bookmarked", handleGetBookmarkedNews(container))
	v1.PUT("/news/:id/bookmark", handleBookmark(container, true))
	v1.DELETE("/news/:id/bookmark", handleBookmark(container, false))
	v1.PUT("/news/:id/viewed", handleViewed(container, true))
	v1.DELETE("/news/:id/viewed", handleViewed(container, false))
}

func handleGetNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := domain.NewsResourceQuery{
			FilterTopicIDs: queryIDs(c, "topicId"),
			FilterNewsIDs:  queryIDs(c, "newsId"),
		}
		news, err := snapshot(c, container.UserNewsRepository.ObserveAll(query))
		if err != nil {
			return handleError(c, err, "ObserveAll")
		}
		return c.JSON(http.StatusOK, news)
	}
}

func handleGetFollowedNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		news, err := snapshot(c, container.UserNewsRepository.ObserveAllForFollowedTopics())
		if err != nil {
			return handleError(c, err, "ObserveAllForFollowedTopics")
		}
		return c.JSON(http.StatusOK, news)
	}
}

func handleGetBookmarkedNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		news, err := snapshot(c, container.UserNewsRepository.ObserveAllBookmarked())
		if err != nil {
			return handleError(c, err, "ObserveAllBookmarked")
		}
		return c.JSON(http.StatusOK, news)
	}
}

func handleBookmark(container *di.ApplicationComponents, bookmarked bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := container.UserDataRepository.SetNewsResourceBookmarked(c.Request().Context(), c.Param("id"), bookmarked); err != nil {
			return handleError(c, err, "SetNewsResourceBookmarked")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handleViewed(container *di.ApplicationComponents, viewed bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := container.UserDataRepository.SetNewsResourceViewed(c.Request().Context(), c.Param("id"), viewed); err != nil {
			return handleError(c, err, "SetNewsResourceViewed")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
