// Package directorybun implements directory.Service on top of
// go-repository-bun repositories. It owns the bun table models for clients,
// products, sales and repairs, translates directory filters into bun select
// criteria, and maps records into the read model the screens consume.
//
// Only the read surface exists here: order submission, stock mutation and the
// rest of the back office's write path stay outside the order-entry core.
package directorybun
