// Package storage provides the physical data columns read by the column
// layer: typed append-only sequences and an interning string pool.
//
// Storage owns the data. Columns borrow *Sequence and *StringPool pointers
// for their entire lifetime, so the storage object must outlive every column
// and every in-flight query built on it.
//
//	ts := storage.NewSequence[int64]()
//	ts.Append(100)
//	ts.Append(200)
//
//	names := storage.NewStringPool()
//	ids := storage.NewSequence[storage.StringID]()
//	ids.Append(names.Intern("sched_switch"))
package storage
