package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Validate() error {
	if t != ThemeLight && t != ThemeDark {
		return invalid("theme", "must be light or dark")
	}

	return nil
}
