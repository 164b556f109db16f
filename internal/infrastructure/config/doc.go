// Package config handles loading and validating dmxaddr configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of enumerated settings
//   - Default value handling
//
// The configuration only covers the tool around the address parser (logging
// and output rendering). Parsing rules are fixed and not configurable.
//
// Usage:
//
//	cfg, err := config.Load("configs/dmxaddr.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Output.Format)
package config
