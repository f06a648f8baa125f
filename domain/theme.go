package domain

import "fmt"

type ThemeBrand string

const (
	ThemeBrandDefault ThemeBrand = "DEFAULT"
	ThemeBrandAndroid ThemeBrand = "ANDROID"
)

func ParseThemeBrand(s string) (ThemeBrand, error) {
	switch ThemeBrand(s) {
	case ThemeBrandDefault, ThemeBrandAndroid:
		return ThemeBrand(s), nil
	}
	return "", fmt.Errorf("%w: unknown theme brand %q", ErrInvalidPreference, s)
}

type DarkThemeConfig string

const (
	DarkThemeFollowSystem DarkThemeConfig = "FOLLOW_SYSTEM"
	DarkThemeLight        DarkThemeConfig = "LIGHT"
	DarkThemeDark         DarkThemeConfig = "DARK"
)

func ParseDarkThemeConfig(s string) (DarkThemeConfig, error) {
	switch DarkThemeConfig(s) {
	case DarkThemeFollowSystem, DarkThemeLight, DarkThemeDark:
		return DarkThemeConfig(s), nil
	}
	return "", fmt.Errorf("%w: unknown dark theme config %q", ErrInvalidPreference, s)
}
