package db_models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ClaimSet is the full set of boolean grants an account can carry. It is
// stored on the account row as jsonb and embedded into issued tokens.
type ClaimSet struct {
	Admin        bool `json:"admin,omitempty"`
	Nutritionist bool `json:"nutritionist,omitempty"`
	Approved     bool `json:"approved,omitempty"`
	Rejected     bool `json:"rejected,omitempty"`
}

// ClaimPatch is a partial update: nil fields leave the existing grant alone,
// so a workflow can never clobber grants set by another workflow.
type ClaimPatch struct {
	Admin        *bool
	Nutritionist *bool
	Approved     *bool
	Rejected     *bool
}

func BoolPtr(b bool) *bool { return &b }

// Merge applies patch on top of the receiver and returns the result.
func (c ClaimSet) Merge(patch ClaimPatch) ClaimSet {
	out := c
	if patch.Admin != nil {
		out.Admin = *patch.Admin
	}
	if patch.Nutritionist != nil {
		out.Nutritionist = *patch.Nutritionist
	}
	if patch.Approved != nil {
		out.Approved = *patch.Approved
	}
	if patch.Rejected != nil {
		out.Rejected = *patch.Rejected
	}
	return out
}

func (c ClaimSet) ToJSON() datatypes.JSON {
	raw, _ := json.Marshal(c)
	return raw
}

func ClaimSetFromJSON(raw datatypes.JSON) ClaimSet {
	var c ClaimSet
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &c)
	}
	return c
}
