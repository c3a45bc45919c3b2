package approval

import (
	"context"
)

// Names là tên người duyệt được denormalize lên response
type Names struct {
	Nombre   *string
	Apellido *string
}

// Project resolves approverID to the approver's names.
// A nil id, or an id whose user no longer exists, yields empty Names.
// One lookup per call; callers invoke it per returned row.
func Project(ctx context.Context, lookup ApproverLookup, approverID *int64) (Names, error) {
	if approverID == nil {
		return Names{}, nil
	}

	approver, err := lookup.FindApprover(ctx, *approverID)
	if err != nil {
		return Names{}, err
	}
	if approver == nil {
		return Names{}, nil
	}

	nombre, apellido := approver.Nombre, approver.Apellido
	return Names{Nombre: &nombre, Apellido: &apellido}, nil
}
