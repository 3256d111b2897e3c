package lore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"inkbound-server/internal/lore"
	"inkbound-server/internal/models"
)

func TestCompose(t *testing.T) {
	base := lore.PersonaTemplate("noir")

	assert.True(t, strings.HasPrefix(base, "You are a master noir novelist."))
	assert.Contains(t, base, "Focus on visceral details and atmosphere.")

	t.Run("template only", func(t *testing.T) {
		assert.Equal(t, base, lore.Compose("noir", "", ""))
	})

	t.Run("lore and focus in order", func(t *testing.T) {
		got := lore.Compose("noir", "World Lore/Characters: Alice (brave). ", "Character Profile: Alice. Bio: brave.")
		assert.Equal(t, base+" World Lore/Characters: Alice (brave). Character Profile: Alice. Bio: brave.", got)
	})

	t.Run("focus without lore", func(t *testing.T) {
		got := lore.Compose("noir", "", "Character Profile: Alice. Bio: brave.")
		assert.Equal(t, base+" Character Profile: Alice. Bio: brave.", got)
	})

	t.Run("genre verbatim", func(t *testing.T) {
		assert.Contains(t, lore.Compose("", "", ""), "You are a master  novelist.")
	})
}

func TestBuilder_ComposeFor(t *testing.T) {
	b := lore.NewBuilder(staticSource{
		{Name: "Alice", Description: "brave"},
	}, zap.NewNop())

	withFocus := b.ComposeFor("fantasy", "alice")
	assert.Contains(t, withFocus, "World Lore/Characters: Alice (brave).")
	assert.True(t, strings.HasSuffix(withFocus, "Character Profile: Alice. Bio: brave."))

	withoutFocus := b.ComposeFor("fantasy", "")
	assert.NotContains(t, withoutFocus, "Character Profile")

	empty := lore.NewBuilder(staticSource([]models.Character{}), zap.NewNop())
	assert.Equal(t, lore.PersonaTemplate("fantasy"), empty.ComposeFor("fantasy", "ghost"))
}
