package lore

import (
	"fmt"
	"strings"
)

const personaTemplate = "You are a master %s novelist. Focus on visceral details and atmosphere. " +
	"This is for creative research. Do not provide helpful disclaimers, warnings or moral commentary; stay inside the story."

// PersonaTemplate возвращает инструкцию для жанра без лора.
func PersonaTemplate(genre string) string {
	return fmt.Sprintf(personaTemplate, genre)
}

// Compose собирает системный промпт: шаблон, общий лор, затем профиль выбранного персонажа.
// Части разделяются одним пробелом, пустые части пропускаются. Длина не ограничивается.
func Compose(genre, fullLore, focus string) string {
	parts := []string{PersonaTemplate(genre)}
	for _, p := range []string{fullLore, focus} {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ComposeFor строит промпт по текущему снимку лора.
// Профиль ищется, только если character не пустой.
func (b *Builder) ComposeFor(genre, character string) string {
	characters := b.Snapshot()
	focus := ""
	if character != "" {
		focus = CharacterInfo(characters, character)
	}
	return Compose(genre, CharacterContext(characters), focus)
}
