package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	apperrors "github.com/NielsdaWheelz/stackup/internal/errors"
)

// HuhProvider asks questions with interactive huh fields. Used on a TTY.
type HuhProvider struct {
	theme *huh.Theme
}

// NewHuhProvider creates a HuhProvider with the Charm theme.
func NewHuhProvider() *HuhProvider {
	return &HuhProvider{theme: huh.ThemeCharm()}
}

// Ask shows a single input field. Validation runs inline so the user can retry.
func (h *HuhProvider) Ask(q Question) (string, error) {
	var value string
	input := huh.NewInput().
		Title(q.Label).
		Value(&value).
		Validate(func(s string) error {
			return inlineValidate(q, s)
		})
	if q.Default != "" && !q.Secret {
		input = input.Placeholder(q.Default)
	}
	if q.Secret {
		input = input.EchoMode(huh.EchoModePassword)
	}

	if err := h.run(huh.NewGroup(input)); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm shows a yes/no field.
func (h *HuhProvider) Confirm(label string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(label).
		Affirmative("Continue").
		Negative("Abort").
		Value(&value)

	if err := h.run(huh.NewGroup(field)); err != nil {
		return false, err
	}
	return value, nil
}

func (h *HuhProvider) run(group *huh.Group) error {
	err := huh.NewForm(group).WithTheme(h.theme).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return apperrors.New(apperrors.EAborted, "cancelled by user")
	}
	return err
}

// inlineValidate mirrors Ask's post-processing so huh can reject bad input early.
func inlineValidate(q Question, s string) error {
	_, err := Ask(staticProvider(s), q)
	if ae, ok := apperrors.AsAppError(err); ok {
		return errors.New(ae.Msg)
	}
	return err
}

// staticProvider answers every question with the same string.
type staticProvider string

func (s staticProvider) Ask(Question) (string, error) {
	return string(s), nil
}

func (s staticProvider) Confirm(string, bool) (bool, error) {
	return false, nil
}
