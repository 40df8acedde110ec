package projections

import (
	"fmt"

	"github.com/barkbook/barkbook/internal/pkg/apperrors"
)

func missingReference(entity string, id int64, relation string) error {
	return apperrors.NewMissingReferenceError(fmt.Sprintf("%s %d has no %s", entity, id, relation))
}
