// Package config provides configuration management for hbsubst.
//
// Configuration is loaded from HBSUBST_-prefixed environment variables and
// validated on startup. Every option has a default, so an empty environment
// is valid.
//
// Example usage:
//
//	cfg, err := config.LoadFrom(snapshot.ParseEnviron(os.Environ()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
