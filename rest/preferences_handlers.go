package rest

import (
	"context"
	"net/http"

	"update-sync/di"
	"update-sync/domain"

	"github.com/labstack/echo/v4"
)

func registerPreferencesRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/preferences", handleGetPreferences(container))
	v1.PATCH("/preferences", handlePatchPreferences(container))
}

func handleGetPreferences(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := snapshot(c, container.UserDataRepository.UserData())
		if err != nil {
			return handleError(c, err, "UserData")
		}
		return c.JSON(http.StatusOK, data)
	}
}

// handlePatchPreferences validates every present field before writing any
// of them.
func handlePatchPreferences(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var patch PreferencesPatch
		if err := c.Bind(&patch); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		var updates []func(ctx context.Context) error
		repo := container.UserDataRepository
		if patch.ThemeBrand != nil {
			brand, err := domain.ParseThemeBrand(*patch.ThemeBrand)
			if err != nil {
				return handleValidationError(c, err.Error(), "themeBrand", *patch.ThemeBrand)
			}
			updates = append(updates, func(ctx context.Context) error { return repo.SetThemeBrand(ctx, brand) })
		}
		if patch.DarkThemeConfig != nil {
			dark, err := domain.ParseDarkThemeConfig(*patch.DarkThemeConfig)
			if err != nil {
				return handleValidationError(c, err.Error(), "darkThemeConfig", *patch.DarkThemeConfig)
			}
			updates = append(updates, func(ctx context.Context) error { return repo.SetDarkThemeConfig(ctx, dark) })
		}
		if patch.UseDynamicColor != nil {
			use := *patch.UseDynamicColor
			updates = append(updates, func(ctx context.Context) error { return repo.SetDynamicColorPreference(ctx, use) })
		}
		if patch.ShouldHideTopicSelection != nil {
			hide := *patch.ShouldHideTopicSelection
			updates = append(updates, func(ctx context.Context) error { return repo.SetShouldHideTopicSelection(ctx, hide) })
		}

		ctx := c.Request().Context()
		for _, update := range updates {
			if err := update(ctx); err != nil {
				return handleError(c, err, "PatchPreferences")
			}
		}

		data, err := snapshot(c, repo.UserData())
		if err != nil {
			return handleError(c, err, "UserData")
		}
		return c.JSON(http.StatusOK, data)
	}
}
