// Package extract isolates the embedded video payload inside a motion photo's
// byte buffer. Only the Google schemes involve in-process offset math; the
// Samsung schemes hand payload recovery to the metadata tool and are rejected
// here so a mis-wired caller fails loudly instead of slicing garbage.
package extract
