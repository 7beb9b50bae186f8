package admin

import (
	"os"
	"testing"

	"github.com/nlypage/intele/collector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/validator"
)

// The input helpers take the collector type intele's constructor returns.
var _ func() *collector.MessageCollector = collector.New

func TestParsePage(t *testing.T) {
	assert.Equal(t, 0, parsePage(""))
	assert.Equal(t, 0, parsePage("menu"))
	assert.Equal(t, 0, parsePage("-1"))
	assert.Equal(t, 3, parsePage(" 3 "))
}

func TestPageOf(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, pageOf(items, 0), pageSize)
	assert.Len(t, pageOf(items, 2), 5)
	assert.Nil(t, pageOf(items, 3), "past the last page")
	assert.Nil(t, pageOf([]int{}, 0))
}

func TestPagesCount(t *testing.T) {
	assert.Equal(t, 1, pagesCount(0))
	assert.Equal(t, 1, pagesCount(10))
	assert.Equal(t, 2, pagesCount(11))
	assert.Equal(t, 3, pagesCount(25))
}

func TestSkipValue(t *testing.T) {
	assert.Equal(t, "", skipValue(skipToken))
	assert.Equal(t, "texto", skipValue("texto"))
}

func TestOptional(t *testing.T) {
	valid := optional(validator.ClubName)

	assert.True(t, valid(skipToken, nil), "the skip token always passes")
	assert.True(t, valid("Club Centro", nil))
	assert.False(t, valid("ab", nil))
}

type layoutConfig struct {
	Buttons map[string]struct {
		Unique string `yaml:"unique"`
	} `yaml:"buttons"`
	Markups map[string][][]string `yaml:"markups"`
}

func loadLayoutConfig(t *testing.T) layoutConfig {
	t.Helper()
	raw, err := os.ReadFile("../../../../../../telegram.yml")
	require.NoError(t, err)

	var cfg layoutConfig
	require.NoError(t, yaml.Unmarshal(raw, &cfg))
	return cfg
}

// Every state change goes through a dedicated confirm markup whose first row
// is the confirming button.
func TestStateChangeConfirmMarkups(t *testing.T) {
	cfg := loadLayoutConfig(t)

	tests := []struct {
		markup  string
		confirm string
	}{
		{"admin:club:approveConfirm", "admin:club:confirm_approve"},
		{"admin:club:activateConfirm", "admin:club:confirm_activate"},
		{"admin:club:deactivateConfirm", "admin:club:confirm_deactivate"},
		{"admin:hub:deactivateConfirm", "admin:hub:confirm_deactivate"},
		{"admin:product:deactivateConfirm", "admin:product:confirm_deactivate"},
		{"admin:membership:toggleConfirm", "admin:membership:confirm_toggle"},
		{"admin:user:deactivateConfirm", "admin:user:confirm_deactivate"},
		{"admin:tier:deleteConfirm", "admin:tier:confirm_delete"},
		{"admin:achievement:deleteConfirm", "admin:achievement:confirm_delete"},
		{"admin:event:deleteConfirm", "admin:event:confirm_delete"},
	}
	for _, tt := range tests {
		t.Run(tt.markup, func(t *testing.T) {
			rows, ok := cfg.Markups[tt.markup]
			require.True(t, ok, "markup not defined")
			require.NotEmpty(t, rows)
			assert.Equal(t, tt.confirm, rows[0][0])

			_, defined := cfg.Buttons[tt.confirm]
			assert.True(t, defined, "confirm button not defined")
		})
	}
}

func TestSectionMenuEntries(t *testing.T) {
	cfg := loadLayoutConfig(t)

	notifications := flatten(cfg.Markups["admin:notifications:menu"])
	assert.Contains(t, notifications, "admin:notifications:history_hub")
	assert.Contains(t, notifications, "admin:notifications:history_club")

	reports := flatten(cfg.Markups["admin:reports:menu"])
	assert.Contains(t, reports, "admin:reports:clubs")
}

func flatten(rows [][]string) []string {
	var names []string
	for _, row := range rows {
		names = append(names, row...)
	}
	return names
}
