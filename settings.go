package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"seismicgrid/internal/seismic"
)

// settingsModelKey selects the initial model inside a settings file.
const settingsModelKey = "model"

// appConfig is everything the front ends need to build a scene.
type appConfig struct {
	params seismic.Params
	canvas seismic.Canvas
	model  string
}

// loadSettings reads a flat JSON object whose keys are configuration field
// names. Values may be JSON numbers or numeric strings.
func loadSettings(path string) (fields map[string]string, model string, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, "", fmt.Errorf("parsing %q: %w", path, err)
	}
	known := make(map[string]bool)
	for _, name := range seismic.FieldNames() {
		known[name] = true
	}
	fields = make(map[string]string, len(doc))
	for key, v := range doc {
		if key == settingsModelKey {
			s, ok := v.(string)
			if !ok {
				return nil, "", fmt.Errorf("%q: %s must be a string", path, key)
			}
			model = s
			continue
		}
		if !known[key] {
			log.Printf("settings %q: ignoring unknown key %q", path, key)
			continue
		}
		switch val := v.(type) {
		case float64:
			fields[key] = strconv.FormatFloat(val, 'g', -1, 64)
		case string:
			fields[key] = val
		default:
			return nil, "", &seismic.ConfigError{Field: key, Value: fmt.Sprint(v), Reason: "must be a number"}
		}
	}
	return fields, model, nil
}

// loadConfig merges defaults, the settings file, and explicitly set flags, in
// that order of precedence from lowest to highest.
func loadConfig(fs *flag.FlagSet, settingsPath string, modelID string, width, height float64) (appConfig, error) {
	fields := map[string]string{}
	if settingsPath != "" {
		fromFile, model, err := loadSettings(settingsPath)
		if err != nil {
			return appConfig{}, err
		}
		fields = fromFile
		if model != "" && !flagWasSet(fs, "model") {
			modelID = model
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if _, ok := paramFlags[f.Name]; ok {
			fields[f.Name] = f.Value.String()
		}
	})
	params, err := seismic.ParseParams(fields)
	if err != nil {
		return appConfig{}, err
	}
	if !(width > 0) || !(height > 0) {
		return appConfig{}, errors.Join(seismic.ErrConfig, fmt.Errorf("canvas %gx%g must be positive", width, height))
	}
	if _, ok := seismic.LookupField(modelID); !ok {
		log.Printf("unknown model %q, using %s", modelID, seismic.DefaultFieldID)
		modelID = seismic.DefaultFieldID
	}
	return appConfig{
		params: params,
		canvas: seismic.Canvas{Width: width, Height: height},
		model:  modelID,
	}, nil
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
