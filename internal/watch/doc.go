// Package watch re-runs an analysis whenever a model source file changes.
//
// Every directory under the project root is watched. Bursts of events are
// coalesced: the callback runs once the tree has been quiet for the debounce
// interval. There is no incremental mode; the callback is expected to run
// the whole pipeline again.
package watch
