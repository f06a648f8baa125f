package rest

import (
	"net/http"

	"update-sync/di"

	"github.com/labstack/echo/v4"
)

func registerSyncRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/sync", handleRequestSync(container))
	v1.GET("/sync/status", handleSyncStatus(container))
}

func handleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := container.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// handleRequestSync queues a pass on the sync manager. A request arriving
// while one is already queued is folded into it.
func handleRequestSync(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		queued := container.SyncManager.RequestSync()
		return c.JSON(http.StatusAccepted, map[string]bool{"queued": queued})
	}
}

func handleSyncStatus(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		versions, err := container.PreferencesDataSource.GetChangeListVersions(c.Request().Context())
		if err != nil {
			return handleError(c, err, "SyncStatus")
		}
		return c.JSON(http.StatusOK, SyncStatusResponse{
			Syncing:  container.SyncManager.Syncing(),
			Versions: versions,
		})
	}
}
