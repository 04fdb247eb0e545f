package main

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
)

type stopper interface{ Stop() }

type noProfile struct{}

func (noProfile) Stop() {}

func profileOption(mode string) (func(*profile.Profile), error) {
	switch strings.ToLower(mode) {
	case "", "off":
		return nil, nil
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}

func startProfile(mode string) (stopper, error) {
	option, err := profileOption(mode)
	if err != nil {
		return nil, err
	}

	if option == nil {
		return noProfile{}, nil
	}

	return profile.Start(option, profile.NoShutdownHook), nil
}
