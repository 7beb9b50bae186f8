package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid", "Club Centro", true},
		{"empty", "", false},
		{"spaces only", "   ", false},
		{"too short", "ab", false},
		{"min length", "abc", true},
		{"max length", strings.Repeat("a", 100), true},
		{"too long", strings.Repeat("a", 101), false},
		{"trimmed before counting", "  ab  ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClubName(tt.value, nil))
		})
	}
}

func TestClubSchedule(t *testing.T) {
	assert.True(t, ClubSchedule("", nil), "schedule is optional")
	assert.True(t, ClubSchedule("L-V 9:00-18:00", nil))
	assert.False(t, ClubSchedule(strings.Repeat("a", 101), nil))
}

func TestRejectReason(t *testing.T) {
	assert.False(t, RejectReason("", nil))
	assert.False(t, RejectReason("   ", nil))
	assert.True(t, RejectReason("documentación incompleta", nil))
}

func TestNumericID(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"42", true},
		{" 7 ", true},
		{"0", false},
		{"-3", false},
		{"abc", false},
		{"", false},
		{"3.5", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumericID(tt.value, nil), "value %q", tt.value)
	}
}

func TestAchievementRequirementType(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"VISITAS", true},
		{"visitas", true},
		{" Consumo ", true},
		{"REFERIDOS", true},
		{"PUNTOS", false},
		{"", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AchievementRequirementType(tt.value, nil), "value %q", tt.value)
	}
}

func TestAchievementIconURL(t *testing.T) {
	assert.True(t, AchievementIconURL("", nil), "icon is optional")
	assert.True(t, AchievementIconURL("https://cdn.example.com/icon.png", nil))
	assert.True(t, AchievementIconURL("http://example.com/a", nil))
	assert.False(t, AchievementIconURL("ftp://example.com/a", nil))
	assert.False(t, AchievementIconURL("not a url", nil))
}

func TestEventDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	assert.True(t, EventDate("", nil), "date is optional")
	assert.True(t, EventDate(today, nil), "today passes")
	assert.True(t, EventDate(tomorrow, nil))
	assert.False(t, EventDate(yesterday, nil))
	assert.False(t, EventDate("31/12/2030", nil), "wrong format")
}

func TestNotPastComparesInGivenZone(t *testing.T) {
	mexicoCity, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	// 02:00 UTC on Sep 1 is still Aug 31 in Mexico City.
	utcNow := time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC)

	assert.False(t, notPast("2026-08-31", utcNow))
	assert.True(t, notPast("2026-08-31", utcNow.In(mexicoCity)), "the admins' current date is not the past")
	assert.True(t, notPast("2026-09-01", utcNow))
	assert.False(t, notPast("2026-08-30", utcNow.In(mexicoCity)))
}

func TestMembershipPoints(t *testing.T) {
	assert.True(t, MembershipPoints("0", nil), "zero is a valid total")
	assert.True(t, MembershipPoints("150", nil))
	assert.False(t, MembershipPoints("-1", nil))
	assert.False(t, MembershipPoints("", nil))
	assert.False(t, MembershipPoints("muchos", nil))
}

func TestTierRequiredVisits(t *testing.T) {
	assert.True(t, TierRequiredVisits("", nil), "visits are optional")
	assert.True(t, TierRequiredVisits("0", nil))
	assert.True(t, TierRequiredVisits("1000", nil))
	assert.False(t, TierRequiredVisits("1001", nil))
	assert.False(t, TierRequiredVisits("-5", nil))
}

func TestTicketStatus(t *testing.T) {
	assert.True(t, TicketStatus("ABIERTO", nil))
	assert.True(t, TicketStatus("en_proceso", nil))
	assert.True(t, TicketStatus("CERRADO", nil))
	assert.False(t, TicketStatus("RESUELTO", nil))
	assert.False(t, TicketStatus("", nil))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("admin@herbalife-clubes.com", nil))
	assert.False(t, Email("admin", nil))
	assert.False(t, Email("", nil))
}

func TestPassword(t *testing.T) {
	assert.False(t, Password("12345", nil))
	assert.True(t, Password("123456", nil))
	assert.False(t, Password("", nil))
}

func TestValidate(t *testing.T) {
	fields := []Field{
		{
			Name:  "nombre",
			Value: "",
			Rules: []Rule{
				{Check: ClubName, Message: "nombre inválido"},
			},
		},
		{
			Name:  "direccion",
			Value: "Av. Reforma 123",
			Rules: []Rule{
				{Check: ClubAddress, Message: "dirección inválida"},
			},
		},
		{
			Name:  "hubId",
			Value: "abc",
			Rules: []Rule{
				{Check: RejectReason, Message: "obligatorio"},
				{Check: NumericID, Message: "debe ser numérico"},
			},
		},
	}

	errs := Validate(fields...)

	assert.Len(t, errs, 2)
	assert.Equal(t, "nombre inválido", errs["nombre"])
	assert.Equal(t, "debe ser numérico", errs["hubId"], "first failing rule wins")
	assert.NotContains(t, errs, "direccion")
}

func TestValidateAllValid(t *testing.T) {
	errs := Validate(Field{
		Name:  "ciudad",
		Value: "Guadalajara",
		Rules: []Rule{{Check: HubCity, Message: "ciudad inválida"}},
	})
	assert.Empty(t, errs)
}
