package rest

import "update-sync/domain"

type FollowedTopicsRequest struct {
	IDs []string `json:"ids"`
}

// PreferencesPatch changes only the fields that are present.
type PreferencesPatch struct {
	ThemeBrand               *string `json:"themeBrand"`
	DarkThemeConfig          *string `json:"darkThemeConfig"`
	UseDynamicColor          *bool   `json:"useDynamicColor"`
	ShouldHideTopicSelection *bool   `json:"shouldHideTopicSelection"`
}

type SyncStatusResponse struct {
	Syncing  bool                      `json:"syncing"`
	Versions domain.ChangeListVersions `json:"versions"`
}
