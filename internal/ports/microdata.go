package ports

import "recs-data/internal/types"

type FrameLoaderPort interface {
	Load(path string) (types.Frame, error)
}
