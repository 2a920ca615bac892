package utils

import "errors"

var (
	ErrUpstreamAPI       = errors.New("generative api returned a non-200 status")
	ErrMalformedEnvelope = errors.New("generative api response has no usable candidates")
	ErrRequestTimeout    = errors.New("generative api request timed out")
	ErrNotEnoughResults  = errors.New("generation produced fewer than 2 destinations")
	ErrGenerationFailed  = errors.New("destination generation failed after all attempts")
	ErrEmptyRequestBody  = errors.New("request body missing or malformed")
	ErrUnknownProvider   = errors.New("unsupported generator provider")
)
