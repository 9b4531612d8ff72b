package models

import "time"

// KarmaTransaction is an append-only ledger entry in the
// 'karma_transactions' table. Rows are never updated or deleted; the running
// total lives on users.karma and is incremented in the same transaction that
// inserts the ledger row.
type KarmaTransaction struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Amount      int       `db:"amount" json:"amount"`
	Reason      string    `db:"reason" json:"reason"`
	Description *string   `db:"description" json:"description,omitempty"`
	RelatedID   *string   `db:"related_id" json:"related_id,omitempty"`     // post, activity, group...
	RelatedType *string   `db:"related_type" json:"related_type,omitempty"` // post, activity, group...
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
