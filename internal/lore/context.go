package lore

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"inkbound-server/internal/models"
)

const loreHeader = "World Lore/Characters: "

// CharacterContext собирает общий блок лора по всем персонажам в порядке хранения.
// Для пустого списка возвращает "".
func CharacterContext(characters []models.Character) string {
	if len(characters) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(loreHeader)
	for _, c := range characters {
		sb.WriteString(fmt.Sprintf("%s (%s). ", c.Name, c.Description))
	}
	return sb.String()
}

// CharacterInfo ищет персонажа по имени без учета регистра.
// Побеждает первое совпадение; если совпадений нет, возвращает "".
func CharacterInfo(characters []models.Character, name string) string {
	for _, c := range characters {
		if strings.EqualFold(c.Name, name) {
			return FormatProfile(c)
		}
	}
	return ""
}

// FormatProfile форматирует однострочный профиль персонажа.
func FormatProfile(c models.Character) string {
	return fmt.Sprintf("Character Profile: %s. Bio: %s.", c.Name, c.Description)
}

// CharacterSource - источник снимка персонажей (хранилище).
type CharacterSource interface {
	List() []models.Character
}

// Builder строит блоки лора поверх хранилища.
type Builder struct {
	source CharacterSource
	logger *zap.Logger
}

// NewBuilder создает Builder.
func NewBuilder(source CharacterSource, logger *zap.Logger) *Builder {
	return &Builder{
		source: source,
		logger: logger.Named("LoreBuilder"),
	}
}

// Snapshot возвращает текущий список персонажей.
func (b *Builder) Snapshot() []models.Character {
	return b.source.List()
}

// Context возвращает общий блок лора.
func (b *Builder) Context() string {
	return CharacterContext(b.Snapshot())
}

// Info возвращает профиль персонажа или "".
func (b *Builder) Info(name string) string {
	info := CharacterInfo(b.Snapshot(), name)
	if info == "" {
		b.logger.Debug("Character not found in lore", zap.String("name", name))
	}
	return info
}
