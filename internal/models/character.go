package models

import "encoding/json"

// Character - запись о персонаже в файле лора.
// Уникальность имени не проверяется, дубликаты допустимы.
type Character struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CharacterDocument - содержимое characters.json.
// Scenes никто не читает, но при перезаписи файла они сохраняются как есть.
type CharacterDocument struct {
	Characters []Character       `json:"characters"`
	Scenes     []json.RawMessage `json:"scenes"`
}

// NewCharacterDocument возвращает пустой документ с ненулевыми срезами,
// чтобы в JSON попадали [] а не null.
func NewCharacterDocument() CharacterDocument {
	return CharacterDocument{
		Characters: []Character{},
		Scenes:     []json.RawMessage{},
	}
}

// Normalize заменяет nil-срезы пустыми (например, после разбора файла без ключа scenes).
func (d *CharacterDocument) Normalize() {
	if d.Characters == nil {
		d.Characters = []Character{}
	}
	if d.Scenes == nil {
		d.Scenes = []json.RawMessage{}
	}
}
