//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval_Overlaps(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC) }
	mk := func(t *testing.T, s, e time.Time) appointment.Interval {
		t.Helper()
		iv, err := appointment.NewInterval(s, e)
		require.NoError(t, err)
		return iv
	}

	tests := []struct {
		name    string
		a, b    [2]time.Time
		overlap bool
	}{
		{name: "identical", a: [2]time.Time{at(10, 0), at(10, 40)}, b: [2]time.Time{at(10, 0), at(10, 40)}, overlap: true},
		{name: "partial", a: [2]time.Time{at(10, 0), at(10, 40)}, b: [2]time.Time{at(10, 30), at(11, 10)}, overlap: true},
		{name: "contained", a: [2]time.Time{at(9, 0), at(12, 0)}, b: [2]time.Time{at(10, 0), at(10, 30)}, overlap: true},
		{name: "touching end to start", a: [2]time.Time{at(10, 0), at(10, 40)}, b: [2]time.Time{at(10, 40), at(11, 20)}, overlap: false},
		{name: "disjoint", a: [2]time.Time{at(10, 0), at(10, 40)}, b: [2]time.Time{at(12, 0), at(12, 40)}, overlap: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mk(t, tt.a[0], tt.a[1])
			b := mk(t, tt.b[0], tt.b[1])
			assert.Equal(t, tt.overlap, a.Overlaps(b))
			assert.Equal(t, tt.overlap, b.Overlaps(a))
		})
	}

	t.Run("empty interval rejected", func(t *testing.T) {
		_, err := appointment.NewInterval(at(10, 0), at(10, 0))
		require.ErrorIs(t, err, appointment.ErrInvalidInterval)
	})
}

func TestNewNotes(t *testing.T) {
	n, err := appointment.NewNotes("  uñas cortas  ")
	require.NoError(t, err)
	assert.Equal(t, "uñas cortas", n.String())
	require.NotNil(t, n.Ptr())

	empty, err := appointment.NewNotes("   ")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, empty.Ptr())

	_, err = appointment.NewNotes(strings.Repeat("ñ", appointment.MaxNotesLength))
	require.NoError(t, err)

	_, err = appointment.NewNotes(strings.Repeat("a", appointment.MaxNotesLength+1))
	require.ErrorIs(t, err, appointment.ErrNotesTooLong)
}

func TestBuildConfirmation(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	// 13:00 UTC is 10:00 in Buenos Aires
	start := time.Date(2025, 3, 3, 13, 0, 0, 0, time.UTC)

	t.Run("without notes", func(t *testing.T) {
		c := appointment.BuildConfirmation("Ana Pérez", "Manicure", start, loc, appointment.Notes{}, "5491100000000")

		assert.Equal(t, "Hola! Soy Ana Pérez. Quiero reservar Manicure el 3/3/2025 a las 10:00.", c.Text)
		assert.True(t, strings.HasPrefix(c.WhatsAppLink, "https://wa.me/5491100000000?text=Hola%21%20Soy%20Ana%20P%C3%A9rez."))
		assert.NotContains(t, c.WhatsAppLink, "+")
	})

	t.Run("with notes", func(t *testing.T) {
		notes, err := appointment.NewNotes("francesita")
		require.NoError(t, err)

		c := appointment.BuildConfirmation("Ana", "Manicure", start, loc, notes, "5491100000000")

		assert.Equal(t, "Hola! Soy Ana. Quiero reservar Manicure el 3/3/2025 a las 10:00. Notas: francesita", c.Text)
	})

	t.Run("no business phone", func(t *testing.T) {
		c := appointment.BuildConfirmation("Ana", "Manicure", start, loc, appointment.Notes{}, "")
		assert.True(t, strings.HasPrefix(c.WhatsAppLink, "https://wa.me/?text="))
	})
}
