/*
Package rex provides the shared vocabulary of a rex app:
sentinel errors, the [Environment] an app runs in,
helpers for reading configuration out of environment variables
and the keys used to stash values in a [context.Context].

The request facade itself lives in package req,
built on the parsers in package param and the multimap in package header.
*/
package rex
