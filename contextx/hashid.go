package contextx

import (
	"context"

	"github.com/kanengo/kuid/hashidx"
)

type __contextx_hashid__ struct {
}

func WithHashID(ctx context.Context, h *hashidx.HashID) context.Context {
	return context.WithValue(ctx, __contextx_hashid__{}, h)
}

// HashID returns the HashID stored by WithHashID, or hashidx.Default.
func HashID(ctx context.Context) *hashidx.HashID {
	val, ok := ctx.Value(__contextx_hashid__{}).(*hashidx.HashID)
	if !ok || val == nil {
		return hashidx.Default()
	}
	return val
}
