// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/maxazure/home/models"
)

const (
	usersTable      = "users"
	ipBlocksTable   = "ip_blocks"
	categoriesTable = "categories"
	linksTable      = "links"
	pagesTable      = "pages"
	regionsTable    = "regions"
)

var (
	userColumns     = []string{"id", "username", "password_hash", "created_at", "is_locked", "failed_login_attempts", "last_failed_login"}
	ipBlockColumns  = []string{"id", "ip_address", "failed_attempts", "is_blocked", "last_attempt", "created_at"}
	categoryColumns = []string{"id", "title", "section_name", "section_order", "category_order", "region_id"}
	linkColumns     = []string{"id", "name", "url", "category_id"}
	pageColumns     = []string{"id", "name", "slug"}
	regionColumns   = []string{"id", "name", "page_id"}
)

// queries builds the SQL of every repository for one dialect.
type queries struct {
	sb         sq.StatementBuilderType
	lockSuffix string
}

func newQueries(d dialect) queries {
	return queries{
		sb:         sq.StatementBuilder.PlaceholderFormat(d.placeholder),
		lockSuffix: d.lockSuffix,
	}
}

func (q queries) locked(b sq.SelectBuilder, lock bool) sq.SelectBuilder {
	if lock && q.lockSuffix != "" {
		return b.Suffix(q.lockSuffix)
	}
	return b
}

// ── users ─────────────────────────────────────────────────────────────────────

func (q queries) insertUser(user models.User) (string, []any, error) {
	return q.sb.Insert(usersTable).
		Columns("username", "password_hash", "created_at", "is_locked", "failed_login_attempts").
		Values(user.Username, user.PasswordHash, user.CreatedAt, user.IsLocked, user.FailedLoginAttempts).
		Suffix("RETURNING id").
		ToSql()
}

func (q queries) selectUser(where sq.Sqlizer, lock bool) (string, []any, error) {
	return q.locked(q.sb.Select(userColumns...).From(usersTable).Where(where), lock).ToSql()
}

func (q queries) selectUsers() (string, []any, error) {
	return q.sb.Select(userColumns...).From(usersTable).OrderBy("id").ToSql()
}

func (q queries) selectUserIDsForUpdate() (string, []any, error) {
	return q.locked(q.sb.Select("id").From(usersTable), true).ToSql()
}

func (q queries) updateUser(user models.User) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set("username", user.Username).
		Set("password_hash", user.PasswordHash).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func (q queries) updateUserGuard(user models.User) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set("is_locked", user.IsLocked).
		Set("failed_login_attempts", user.FailedLoginAttempts).
		Set("last_failed_login", user.LastFailedLogin).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func (q queries) deleteByID(table string, id int64) (string, []any, error) {
	return q.sb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}

// ── ip blocks ─────────────────────────────────────────────────────────────────

func (q queries) insertIPBlockIfAbsent(block models.IPBlock) (string, []any, error) {
	return q.sb.Insert(ipBlocksTable).
		Columns("ip_address", "failed_attempts", "is_blocked", "last_attempt", "created_at").
		Values(block.IPAddress, block.FailedAttempts, block.IsBlocked, block.LastAttempt, block.CreatedAt).
		Suffix("ON CONFLICT (ip_address) DO NOTHING RETURNING id").
		ToSql()
}

func (q queries) selectIPBlock(where sq.Sqlizer, lock bool) (string, []any, error) {
	return q.locked(q.sb.Select(ipBlockColumns...).From(ipBlocksTable).Where(where), lock).ToSql()
}

func (q queries) selectIPBlocks() (string, []any, error) {
	return q.sb.Select(ipBlockColumns...).From(ipBlocksTable).OrderBy("last_attempt DESC", "id").ToSql()
}

func (q queries) updateIPBlockGuard(block models.IPBlock) (string, []any, error) {
	return q.sb.Update(ipBlocksTable).
		Set("failed_attempts", block.FailedAttempts).
		Set("is_blocked", block.IsBlocked).
		Set("last_attempt", block.LastAttempt).
		Where(sq.Eq{"id": block.ID}).
		ToSql()
}

// ── categories ────────────────────────────────────────────────────────────────

func (q queries) insertCategory(c models.Category) (string, []any, error) {
	return q.sb.Insert(categoriesTable).
		Columns("title", "section_name", "section_order", "category_order", "region_id").
		Values(c.Title, c.SectionName, c.SectionOrder, c.CategoryOrder, c.RegionID).
		Suffix("RETURNING id").
		ToSql()
}

func (q queries) selectCategories(where sq.Sqlizer, lock bool) (string, []any, error) {
	b := q.sb.Select(categoryColumns...).From(categoriesTable)
	if where != nil {
		b = b.Where(where)
	}
	b = b.OrderBy("section_order", "section_name", "category_order", "id")
	return q.locked(b, lock).ToSql()
}

func (q queries) updateCategory(c models.Category) (string, []any, error) {
	return q.sb.Update(categoriesTable).
		Set("title", c.Title).
		Set("section_name", c.SectionName).
		Set("section_order", c.SectionOrder).
		Set("category_order", c.CategoryOrder).
		Set("region_id", c.RegionID).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
}

func (q queries) selectNeighbor(sectionName string, categoryOrder int, dir models.Direction) (string, []any, error) {
	b := q.sb.Select(categoryColumns...).From(categoriesTable).Where(sq.Eq{"section_name": sectionName})
	if dir == models.DirectionUp {
		b = b.Where(sq.Lt{"category_order": categoryOrder}).OrderBy("category_order DESC")
	} else {
		b = b.Where(sq.Gt{"category_order": categoryOrder}).OrderBy("category_order ASC")
	}
	return b.Limit(1).ToSql()
}

func (q queries) setCategoryOrder(id int64, categoryOrder int) (string, []any, error) {
	return q.sb.Update(categoriesTable).
		Set("category_order", categoryOrder).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (q queries) shiftCategoryOrders(sectionName string, from, to, delta int) (string, []any, error) {
	return q.sb.Update(categoriesTable).
		Set("category_order", sq.Expr("category_order + ?", delta)).
		Where(sq.Eq{"section_name": sectionName}).
		Where(sq.GtOrEq{"category_order": from}).
		Where(sq.LtOrEq{"category_order": to}).
		ToSql()
}

func (q queries) selectMaxCategoryOrder(sectionName string) (string, []any, error) {
	return q.sb.Select("COALESCE(MAX(category_order), 0)").
		From(categoriesTable).
		Where(sq.Eq{"section_name": sectionName}).
		ToSql()
}

func (q queries) selectSectionOrder(sectionName string) (string, []any, error) {
	return q.sb.Select("section_order").
		From(categoriesTable).
		Where(sq.Eq{"section_name": sectionName}).
		OrderBy("category_order").
		Limit(1).
		ToSql()
}

func (q queries) selectAdjacentSection(sectionOrder int, dir models.Direction) (string, []any, error) {
	b := q.sb.Select("section_name", "section_order").From(categoriesTable)
	if dir == models.DirectionUp {
		b = b.Where(sq.Lt{"section_order": sectionOrder}).OrderBy("section_order DESC")
	} else {
		b = b.Where(sq.Gt{"section_order": sectionOrder}).OrderBy("section_order ASC")
	}
	return b.Limit(1).ToSql()
}

func (q queries) setSectionOrder(sectionName string, sectionOrder int) (string, []any, error) {
	return q.sb.Update(categoriesTable).
		Set("section_order", sectionOrder).
		Where(sq.Eq{"section_name": sectionName}).
		ToSql()
}

func (q queries) shiftSectionOrders(after, delta int) (string, []any, error) {
	return q.sb.Update(categoriesTable).
		Set("section_order", sq.Expr("section_order + ?", delta)).
		Where(sq.Gt{"section_order": after}).
		ToSql()
}

func (q queries) selectMaxSectionOrder() (string, []any, error) {
	return q.sb.Select("COALESCE(MAX(section_order), 0)").From(categoriesTable).ToSql()
}

func (q queries) renameSection(oldName, newName string) (string, []any, error) {
	return q.sb.Update(categoriesTable).
		Set("section_name", newName).
		Where(sq.Eq{"section_name": oldName}).
		ToSql()
}

func (q queries) deleteSection(sectionName string) (string, []any, error) {
	return q.sb.Delete(categoriesTable).Where(sq.Eq{"section_name": sectionName}).ToSql()
}

// ── links ─────────────────────────────────────────────────────────────────────

func (q queries) insertLink(l models.Link) (string, []any, error) {
	return q.sb.Insert(linksTable).
		Columns("name", "url", "category_id").
		Values(l.Name, l.URL, l.CategoryID).
		Suffix("RETURNING id").
		ToSql()
}

func (q queries) selectLinks(where sq.Sqlizer) (string, []any, error) {
	b := q.sb.Select(linkColumns...).From(linksTable)
	if where != nil {
		b = b.Where(where)
	}
	return b.OrderBy("id").ToSql()
}

func (q queries) updateLink(l models.Link) (string, []any, error) {
	return q.sb.Update(linksTable).
		Set("name", l.Name).
		Set("url", l.URL).
		Set("category_id", l.CategoryID).
		Where(sq.Eq{"id": l.ID}).
		ToSql()
}

// ── pages ─────────────────────────────────────────────────────────────────────

func (q queries) insertPage(p models.Page) (string, []any, error) {
	return q.sb.Insert(pagesTable).
		Columns("name", "slug").
		Values(p.Name, p.Slug).
		Suffix("RETURNING id").
		ToSql()
}

func (q queries) selectPages(where sq.Sqlizer) (string, []any, error) {
	b := q.sb.Select(pageColumns...).From(pagesTable)
	if where != nil {
		b = b.Where(where)
	}
	return b.OrderBy("id").ToSql()
}

func (q queries) updatePage(p models.Page) (string, []any, error) {
	return q.sb.Update(pagesTable).
		Set("name", p.Name).
		Set("slug", p.Slug).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
}

// ── regions ───────────────────────────────────────────────────────────────────

func (q queries) insertRegion(r models.Region) (string, []any, error) {
	return q.sb.Insert(regionsTable).
		Columns("name", "page_id").
		Values(r.Name, r.PageID).
		Suffix("RETURNING id").
		ToSql()
}

func (q queries) selectRegions(where sq.Sqlizer) (string, []any, error) {
	b := q.sb.Select(regionColumns...).From(regionsTable)
	if where != nil {
		b = b.Where(where)
	}
	return b.OrderBy("id").ToSql()
}

func (q queries) updateRegion(r models.Region) (string, []any, error) {
	return q.sb.Update(regionsTable).
		Set("name", r.Name).
		Set("page_id", r.PageID).
		Where(sq.Eq{"id": r.ID}).
		ToSql()
}

// nowUTC is the timestamp source for created_at columns written by the
// repositories.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}
