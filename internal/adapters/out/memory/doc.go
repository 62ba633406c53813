// Package memory provides the in-memory delivery event store and its
// Unit of Work.
//
// The store keeps events in insertion order together with an index from
// delivery key to positions, so reading or updating one delivery does not
// scan the whole list. Every committed write bumps a version number.
//
// Usage Patterns:
//
// Direct access, one write at a time:
//
//	store := memory.NewStore()
//	if err := store.Save(ctx, ev); err != nil {
//	    return err
//	}
//	events, err := store.List(ctx)
//
// Transactions:
//
//	uow := memory.NewUnitOfWorkFactory(store).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.DeliveryEventRepository().Save(ctx, ev); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Begin copies the committed state; Commit publishes the copy only if no
// other write was committed in between, otherwise it fails with a
// VersionIsInvalidError and nothing is applied.
package memory
