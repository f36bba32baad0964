package tui

import "errors"

// ErrMissingSession is returned when the quiz session is not provided.
var ErrMissingSession = errors.New("tui: quiz session is required")

// ErrMissingRecommender is returned when the recommender is not provided.
var ErrMissingRecommender = errors.New("tui: recommender is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
