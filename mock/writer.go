package mock

import (
	"context"

	"github.com/fwojciec/alfroster"
)

var _ alfroster.FacilityWriter = (*FacilityWriter)(nil)

// FacilityWriter is a mock implementation of alfroster.FacilityWriter.
type FacilityWriter struct {
	WriteAllFn func(ctx context.Context, facilities []*alfroster.Facility) error
}

func (w *FacilityWriter) WriteAll(ctx context.Context, facilities []*alfroster.Facility) error {
	return w.WriteAllFn(ctx, facilities)
}
