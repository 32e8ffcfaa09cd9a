// Package scaffold writes the base SvelteKit project that every Skeleton app
// starts from. Files come from embedded template sets; optional files are
// rendered empty and skipped when the matching feature is off.
package scaffold
