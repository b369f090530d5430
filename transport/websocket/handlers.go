package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/dto"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	game, err := that.games.CreateGame(ctx)
	return that.reply(conn, msg.Action, game, err)
}

func (that *Server) handleView(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	req, err := that.parseRequest(conn, msg)
	if err != nil || req == nil {
		return err
	}

	game, err := that.games.GetGame(ctx, req.GameID)
	return that.reply(conn, msg.Action, game, err)
}

func (that *Server) handleMove(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	req, err := that.parseRequest(conn, msg)
	if err != nil || req == nil {
		return err
	}

	if req.Cell == nil {
		return that.sendError(conn, msg.Action, "cell is required")
	}

	game, err := that.games.MakeTurn(ctx, req.GameID, *req.Cell)
	return that.reply(conn, msg.Action, game, err)
}

func (that *Server) handleJump(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	req, err := that.parseRequest(conn, msg)
	if err != nil || req == nil {
		return err
	}

	if req.Step == nil {
		return that.sendError(conn, msg.Action, "step is required")
	}

	game, err := that.games.JumpTo(ctx, req.GameID, *req.Step)
	return that.reply(conn, msg.Action, game, err)
}

func (that *Server) handleToggleOrder(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	req, err := that.parseRequest(conn, msg)
	if err != nil || req == nil {
		return err
	}

	game, err := that.games.ToggleMoveOrder(ctx, req.GameID)
	return that.reply(conn, msg.Action, game, err)
}

func (that *Server) handleDelete(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	req, err := that.parseRequest(conn, msg)
	if err != nil || req == nil {
		return err
	}

	if err = that.games.DeleteGame(ctx, req.GameID); err != nil {
		return that.reply(conn, msg.Action, nil, err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{})
}

// parseRequest - decodes the payload. A nil request with a nil error means
// the client was already told what is wrong.
func (that *Server) parseRequest(conn *websocket.Conn, msg *Message) (*RequestPayload, error) {
	var req RequestPayload

	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return nil, that.sendError(conn, msg.Action, "malformed payload")
	}

	if req.GameID == "" {
		return nil, that.sendError(conn, msg.Action, "game_id is required")
	}

	return &req, nil
}

func (that *Server) reply(conn *websocket.Conn, action string, game *usecase.Game, err error) error {
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return that.sendError(conn, action, apperror.ErrSessionNotFound.Error())
	}

	if err != nil {
		if sendErr := that.sendError(conn, action, "internal error"); sendErr != nil {
			return sendErr
		}
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	return that.sendMessage(conn, action, ResponsePayload{Game: dto.NewGame(game)})
}
