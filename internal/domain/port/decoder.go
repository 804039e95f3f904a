package port

import "delta-detect/internal/domain/entity"

// FrameDecoder turns an encoded image into a BGR pixel frame.
type FrameDecoder interface {
	Decode(data []byte) (*entity.Frame, error)
}
