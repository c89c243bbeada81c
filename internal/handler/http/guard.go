package http

import (
	"fmt"
	"net/http"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
)

func (h *Handler) unlockUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.unlockUser", err)
		return
	}

	var user models.User
	err = store.WithinTx(ctx, h.services.Transactor, func(uow store.UnitOfWork) error {
		user, err = h.services.AuthGuard.UnlockUser(ctx, uow, id)
		return err
	})
	if err != nil {
		writeError(w, r, "Handler.unlockUser", err)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)
	logger.FromRequest(r).Info().Int64("user_id", user.ID).Int64("actor_id", actorID).Msg("user unlocked")
	writeMessage(w, fmt.Sprintf("user %s unlocked", user.Username))
}

func (h *Handler) unblockIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "Handler.unblockIP", err)
		return
	}

	var block models.IPBlock
	err = store.WithinTx(ctx, h.services.Transactor, func(uow store.UnitOfWork) error {
		block, err = h.services.AuthGuard.UnblockIP(ctx, uow, id)
		return err
	})
	if err != nil {
		writeError(w, r, "Handler.unblockIP", err)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)
	logger.FromRequest(r).Info().Str("ip", block.IPAddress).Int64("actor_id", actorID).Msg("ip unblocked")
	writeMessage(w, fmt.Sprintf("ip %s unblocked", block.IPAddress))
}

func (h *Handler) listIPBlocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var blocks []models.IPBlock
	err := store.ReadOnly(ctx, h.services.Transactor, func(uow store.UnitOfWork) error {
		var err error
		blocks, err = h.services.AuthGuard.ListIPBlocks(ctx, uow)
		return err
	})
	if err != nil {
		writeError(w, r, "Handler.listIPBlocks", err)
		return
	}

	writeOK(w, models.NewIPBlockResponses(blocks))
}
