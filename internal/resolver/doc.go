/*
Package resolver expands include and import directives into one merged
document.

Resolution starts at a root file and walks include directives found at the top
level of a document and inside system and component bodies. Each included file
is parsed on its own, so a broken file only loses its own content. Problems are
collected as ResolveError values on the Result instead of being returned as Go
errors; a resolution always produces a document, possibly empty.

At each include site the checks run in a fixed order:

 1. SUSPICIOUS_PATH: the directive is absolute or resolves outside the project root.
 2. MAX_DEPTH_EXCEEDED: the included file would sit deeper than Options.MaxDepth.
 3. CIRCULAR_INCLUDE: the target is already on the current include chain.
 4. Already visited: the target was merged earlier; it is skipped silently.
 5. FILE_NOT_FOUND: the target does not exist.
 6. PARSE_ERROR: the Parser rejected the target.

Items included into a system body that are not components or comments are
hoisted out of the system and placed immediately before it, keeping the order
in which they were included.
*/
package resolver
