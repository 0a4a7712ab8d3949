// Package snapshot gathers the facts a template is rendered against.
//
// A Snapshot holds three string-to-string mappings:
//
//	cpu.logical, cpu.physical   core counts
//	mem.total, mem.used, mem.free   byte counts, free = total - used
//	env.<NAME>                  process environment
//
// Example usage:
//
//	b := snapshot.NewBuilder(snapshot.SystemHost{}, os.Environ, logger)
//	snap, err := b.Build(ctx)
//	if err != nil {
//	    return err
//	}
//	data := snap.Data() // map[string]interface{}{"cpu": ..., "mem": ..., "env": ...}
package snapshot
