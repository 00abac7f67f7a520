package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/log"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/listing"
	"github.com/unicmarket/goapi/service/query"
)

// ownerIndex is one document per owner holding the keys of every listing
// that owner currently has up. The document is deleted, not left empty,
// when its last key is pulled.
type ownerIndex struct {
	Owner domain.Account `bson:"ownerId"`
	Keys  []string       `bson:"keys"`
}

type registryIndex struct {
	RegistryId domain.RegistryId `bson:"registryId"`
	Keys       []string          `bson:"keys"`
}

type listingImpl struct {
	q query.Mongo
}

func NewListing(q query.Mongo) listing.Repo {
	return &listingImpl{q}
}

func (im *listingImpl) Insert(c ctx.Ctx, l *listing.Listing) error {
	l.Owner = l.Owner.ToLower()
	if err := im.q.Insert(c, domain.TableListings, l); err != nil {
		c.WithFields(log.Fields{
			"key": l.ToId().Key(),
			"err": err,
		}).Error("insert listing failed")
		return err
	}

	key := l.ToId().Key()
	if err := im.q.CustomPatch(c, domain.TableListingsByOwner,
		bson.M{"ownerId": l.Owner},
		bson.M{"$addToSet": bson.M{"keys": key}}, true); err != nil {
		c.WithFields(log.Fields{
			"owner": l.Owner,
			"key":   key,
			"err":   err,
		}).Error("add key to owner index failed")
		return err
	}
	if err := im.q.CustomPatch(c, domain.TableListingsByRegistry,
		bson.M{"registryId": l.RegistryId},
		bson.M{"$addToSet": bson.M{"keys": key}}, true); err != nil {
		c.WithFields(log.Fields{
			"registryId": l.RegistryId,
			"key":        key,
			"err":        err,
		}).Error("add key to registry index failed")
		return err
	}
	return nil
}

func (im *listingImpl) FindOne(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	res := &listing.Listing{}
	if err := im.q.FindOne(c, domain.TableListings, im.selector(id), res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"key": id.Key(),
			"err": err,
		}).Error("find listing failed")
		return nil, err
	}
	return res, nil
}

func (im *listingImpl) Patch(c ctx.Ctx, id listing.Id, patch *listing.Patchable) error {
	if err := im.q.Patch(c, domain.TableListings, im.selector(id), patch); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"key": id.Key(),
			"err": err,
		}).Error("patch listing failed")
		return err
	}
	return nil
}

func (im *listingImpl) Remove(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	removed, err := im.FindOne(c, id)
	if err != nil {
		return nil, err
	}

	if err := im.q.Remove(c, domain.TableListings, im.selector(id)); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"key": id.Key(),
			"err": err,
		}).Error("remove listing failed")
		return nil, err
	}

	key := id.Key()
	if err := im.pullFromOwnerIndex(c, removed.Owner, key); err != nil {
		return nil, err
	}
	if err := im.pullFromRegistryIndex(c, id.RegistryId, key); err != nil {
		return nil, err
	}
	return removed, nil
}

// pullFromOwnerIndex drops the key from the owner's index set and deletes
// the index document when the set is drained. A primary listing without an
// owner index document means the two collections have diverged.
func (im *listingImpl) pullFromOwnerIndex(c ctx.Ctx, owner domain.Account, key string) error {
	selector := bson.M{"ownerId": owner}
	entry := &ownerIndex{}
	if err := im.q.FindOne(c, domain.TableListingsByOwner, selector, entry); err == query.ErrNotFound {
		c.WithFields(log.Fields{
			"owner": owner,
			"key":   key,
		}).Error("owner index set missing for stored listing")
		return domain.ErrIndexCorrupted
	} else if err != nil {
		return err
	}

	if err := im.q.Pull(c, domain.TableListingsByOwner, selector, entry, "keys", key); err != nil {
		c.WithFields(log.Fields{
			"owner": owner,
			"key":   key,
			"err":   err,
		}).Error("pull key from owner index failed")
		return err
	}
	if len(entry.Keys) == 0 {
		if err := im.q.Remove(c, domain.TableListingsByOwner, selector); err != nil && err != query.ErrNotFound {
			c.WithFields(log.Fields{
				"owner": owner,
				"err":   err,
			}).Error("remove drained owner index failed")
			return err
		}
	}
	return nil
}

func (im *listingImpl) pullFromRegistryIndex(c ctx.Ctx, registry domain.RegistryId, key string) error {
	selector := bson.M{"registryId": registry}
	entry := &registryIndex{}
	if err := im.q.FindOne(c, domain.TableListingsByRegistry, selector, entry); err == query.ErrNotFound {
		c.WithFields(log.Fields{
			"registryId": registry,
			"key":        key,
		}).Error("registry index set missing for stored listing")
		return domain.ErrIndexCorrupted
	} else if err != nil {
		return err
	}

	if err := im.q.Pull(c, domain.TableListingsByRegistry, selector, entry, "keys", key); err != nil {
		c.WithFields(log.Fields{
			"registryId": registry,
			"key":        key,
			"err":        err,
		}).Error("pull key from registry index failed")
		return err
	}
	if len(entry.Keys) == 0 {
		if err := im.q.Remove(c, domain.TableListingsByRegistry, selector); err != nil && err != query.ErrNotFound {
			c.WithFields(log.Fields{
				"registryId": registry,
				"err":        err,
			}).Error("remove drained registry index failed")
			return err
		}
	}
	return nil
}

func (im *listingImpl) FindKeysByOwner(c ctx.Ctx, owner domain.Account) ([]string, error) {
	entry := &ownerIndex{}
	if err := im.q.FindOne(c, domain.TableListingsByOwner, bson.M{"ownerId": owner.ToLower()}, entry); err == query.ErrNotFound {
		return []string{}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Error("find owner index failed")
		return nil, err
	}
	return entry.Keys, nil
}

func (im *listingImpl) FindKeysByRegistry(c ctx.Ctx, registry domain.RegistryId) ([]string, error) {
	entry := &registryIndex{}
	if err := im.q.FindOne(c, domain.TableListingsByRegistry, bson.M{"registryId": registry}, entry); err == query.ErrNotFound {
		return []string{}, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"registryId": registry,
			"err":        err,
		}).Error("find registry index failed")
		return nil, err
	}
	return entry.Keys, nil
}

func (im *listingImpl) CountByOwner(c ctx.Ctx, owner domain.Account) (int, error) {
	keys, err := im.FindKeysByOwner(c, owner)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (im *listingImpl) selector(id listing.Id) bson.M {
	return bson.M{"registryId": id.RegistryId, "assetId": id.AssetId}
}
