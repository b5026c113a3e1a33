package model

import "time"

// DictionaryEntry represents a custom dictionary word as stored in the
// `dictionary_entries` table. Custom entries extend the stock lexicon
// with domain vocabulary (brand names, jargon) that the word list does
// not know. The Normalized column holds the Turkish-lowercased,
// letters-only form that the spell checker actually matches against.
//
// Fields:
//  ID         – primary key identifier.
//  Word       – the word as entered by the admin.
//  Normalized – lowercased, letters-only form merged into the lexicon.
//  AddedBy    – user ID of the admin who added the entry.
//  IsActive   – soft-delete flag; inactive entries are not loaded.
//  CreatedAt  – timestamp of creation.
type DictionaryEntry struct {
	ID         uint64    // dictionary_entries.id
	Word       string    // dictionary_entries.word
	Normalized string    // dictionary_entries.normalized
	AddedBy    uint64    // dictionary_entries.added_by
	IsActive   bool      // dictionary_entries.is_active
	CreatedAt  time.Time // dictionary_entries.created_at
}
