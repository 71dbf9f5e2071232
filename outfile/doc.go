// Package outfile provides the output container histograms are written into:
// a tree of named directories, each holding named object records, persisted
// into a single file.
//
// # Overview
//
// A File is the top-level directory of the tree. Sub-directories are created
// with Mkdir one segment at a time, or with MkdirAll for a slash-delimited
// path. Objects are stored with Put, which encodes the object immediately;
// the directory keeps the encoded Record, not the live object.
//
// Nothing touches disk until Flush or Close. Flush serializes the whole tree
// into the backing store and forces it to durable storage.
//
// # Stores
//
// The store is picked from the file extension unless Options.Store says
// otherwise:
//
//	.db, .sqlite, .sqlite3  -> SQLite database (tables dirs, objects)
//	anything else           -> YAML document, replaced atomically on Flush
//
// # Basic Usage
//
//	f, err := outfile.Create("/tmp/out.yaml", nil)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	sub, err := f.MkdirAll("data/sub")
//	if err != nil {
//	    return err
//	}
//	if err := sub.Put(h); err != nil {
//	    return err
//	}
//	return f.Flush()
//
// Thread safety: File and Dir are NOT safe for concurrent use.
package outfile
