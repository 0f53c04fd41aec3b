package subgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xayaplatform/xaya-move-api/internal/apperr"
	"github.com/xayaplatform/xaya-move-api/internal/chain"
	"github.com/xayaplatform/xaya-move-api/internal/constants"
)

// Service exposes the stats-subgraph queries. Name lookups go through
// the accounts contract first to translate names into subgraph IDs.
type Service struct {
	client   *Client
	accounts chain.Accounts
}

// NewService creates a new subgraph query service.
func NewService(client *Client, accounts chain.Accounts) *Service {
	return &Service{client: client, accounts: accounts}
}

// TxInfo describes the transaction a subgraph event belongs to.
type TxInfo struct {
	ID        string      `json:"id"`
	Height    json.Number `json:"height"`
	Timestamp json.Number `json:"timestamp"`
}

// Registration is the registration record for a name.
type Registration struct {
	Txid      string      `json:"txid"`
	Height    json.Number `json:"height"`
	Timestamp json.Number `json:"timestamp"`
}

// QualifiedName is a namespace/name pair.
type QualifiedName struct {
	Ns   string `json:"ns"`
	Name string `json:"name"`
}

// NamesPage is one page of names owned by an address.
type NamesPage struct {
	Names []QualifiedName `json:"names"`
	More  bool            `json:"more"`
}

// GameMove is one move as seen by a game.
type GameMove struct {
	Tx       TxInfo        `json:"tx"`
	Name     QualifiedName `json:"name"`
	GameMove string        `json:"gamemove"`
}

// GameMovesPage is one page of moves for a game.
type GameMovesPage struct {
	Moves []GameMove `json:"moves"`
	More  bool       `json:"more"`
}

// NameMove is one move sent for a name, with the games it addressed.
type NameMove struct {
	Tx    TxInfo   `json:"tx"`
	Games []string `json:"games"`
	Move  string   `json:"move"`
}

// NameMovesPage is one page of moves for a name.
type NameMovesPage struct {
	Moves []NameMove `json:"moves"`
	More  bool       `json:"more"`
}

// NameRegistration returns the registration info for a name.
func (s *Service) NameRegistration(ctx context.Context, ns, name string) (*Registration, error) {
	tokenID, err := s.accounts.TokenIDForName(ctx, ns, name)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, err, "name %s/%s not found", ns, name)
	}

	query := fmt.Sprintf(`
	  query {
	    registrations (where: {name: %q})
	    {
	      id
	      tx {
	        id
	        height
	        timestamp
	      }
	    }
	  }
	`, hexTokenID(tokenID))

	var data struct {
		Registrations []struct {
			Tx TxInfo `json:"tx"`
		} `json:"registrations"`
	}
	if err := s.client.Query(ctx, query, &data); err != nil {
		return nil, err
	}
	if len(data.Registrations) == 0 {
		return nil, apperr.New(apperr.KindNotFound, "no registration found for %s/%s", ns, name)
	}

	tx := data.Registrations[0].Tx
	return &Registration{Txid: tx.ID, Height: tx.Height, Timestamp: tx.Timestamp}, nil
}

// NamesOwnedBy returns a batch of names owned by an address, starting
// at offset.
func (s *Service) NamesOwnedBy(ctx context.Context, owner string, offset int) (*NamesPage, error) {
	query := fmt.Sprintf(`
	  query {
	    names (
	      where: {owner: %q},
	      orderBy: id,
	      orderDirection: asc,
	      first: %d,
	      skip: %d
	    ) {
	      ns {
	        ns
	      }
	      name
	    }
	  }
	`, owner, constants.SubgraphBatchSize+1, offset)

	var data struct {
		Names []struct {
			Ns struct {
				Ns string `json:"ns"`
			} `json:"ns"`
			Name string `json:"name"`
		} `json:"names"`
	}
	if err := s.client.Query(ctx, query, &data); err != nil {
		return nil, err
	}

	more := false
	entries := data.Names
	if len(entries) > constants.SubgraphBatchSize {
		more = true
		entries = entries[:constants.SubgraphBatchSize]
	}

	page := &NamesPage{Names: make([]QualifiedName, 0, len(entries)), More: more}
	for _, n := range entries {
		page.Names = append(page.Names, QualifiedName{Ns: n.Ns.Ns, Name: n.Name})
	}
	return page, nil
}

// MovesForGame returns a batch of moves for a game, newest first,
// optionally bounded by timestamps.
func (s *Service) MovesForGame(ctx context.Context, game string, fromTimestamp, toTimestamp *int64, offset int) (*GameMovesPage, error) {
	conditions := []string{fmt.Sprintf(`{game_: {game: %q}}`, game)}
	conditions = append(conditions, timestampConditions(fromTimestamp, toTimestamp)...)

	query := fmt.Sprintf(`
	  query {
	    gameMoves (
	      where: {and: [%s]},
	      orderBy: tx__timestamp,
	      orderDirection: desc,
	      first: %d,
	      skip: %d
	    ) {
	      move {
	        tx {
	          id
	          height
	          timestamp
	        }
	        name {
	          ns {
	            ns
	          }
	          name
	        }
	      }
	      gamemove
	    }
	  }
	`, strings.Join(conditions, ", "), constants.SubgraphBatchSize+1, offset)

	var data struct {
		GameMoves []struct {
			Move struct {
				Tx   TxInfo `json:"tx"`
				Name struct {
					Ns struct {
						Ns string `json:"ns"`
					} `json:"ns"`
					Name string `json:"name"`
				} `json:"name"`
			} `json:"move"`
			GameMove string `json:"gamemove"`
		} `json:"gameMoves"`
	}
	if err := s.client.Query(ctx, query, &data); err != nil {
		return nil, err
	}

	more := false
	entries := data.GameMoves
	if len(entries) > constants.SubgraphBatchSize {
		more = true
		entries = entries[:constants.SubgraphBatchSize]
	}

	page := &GameMovesPage{Moves: make([]GameMove, 0, len(entries)), More: more}
	for _, m := range entries {
		page.Moves = append(page.Moves, GameMove{
			Tx:       m.Move.Tx,
			Name:     QualifiedName{Ns: m.Move.Name.Ns.Ns, Name: m.Move.Name.Name},
			GameMove: m.GameMove,
		})
	}
	return page, nil
}

// MovesForName returns a batch of moves for a name, newest first,
// optionally bounded by timestamps.
func (s *Service) MovesForName(ctx context.Context, ns, name string, fromTimestamp, toTimestamp *int64, offset int) (*NameMovesPage, error) {
	tokenID, err := s.accounts.TokenIDForName(ctx, ns, name)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, err, "name %s/%s not found", ns, name)
	}

	conditions := []string{fmt.Sprintf(`{name: %q}`, hexTokenID(tokenID))}
	conditions = append(conditions, timestampConditions(fromTimestamp, toTimestamp)...)

	query := fmt.Sprintf(`
	  query {
	    moves (
	      where: {and: [%s]},
	      orderBy: tx__timestamp,
	      orderDirection: desc,
	      first: %d,
	      skip: %d
	    ) {
	      tx {
	        id
	        height
	        timestamp
	      }
	      games {
	        game {
	          game
	        }
	      }
	      move
	    }
	  }
	`, strings.Join(conditions, ", "), constants.SubgraphBatchSize+1, offset)

	var data struct {
		Moves []struct {
			Tx    TxInfo `json:"tx"`
			Games []struct {
				Game struct {
					Game string `json:"game"`
				} `json:"game"`
			} `json:"games"`
			Move string `json:"move"`
		} `json:"moves"`
	}
	if err := s.client.Query(ctx, query, &data); err != nil {
		return nil, err
	}

	more := false
	entries := data.Moves
	if len(entries) > constants.SubgraphBatchSize {
		more = true
		entries = entries[:constants.SubgraphBatchSize]
	}

	page := &NameMovesPage{Moves: make([]NameMove, 0, len(entries)), More: more}
	for _, m := range entries {
		games := make([]string, 0, len(m.Games))
		for _, g := range m.Games {
			games = append(games, g.Game.Game)
		}
		page.Moves = append(page.Moves, NameMove{Tx: m.Tx, Games: games, Move: m.Move})
	}
	return page, nil
}

func timestampConditions(fromTimestamp, toTimestamp *int64) []string {
	var conditions []string
	if fromTimestamp != nil {
		conditions = append(conditions, fmt.Sprintf(`{tx_: {timestamp_gte: %d}}`, *fromTimestamp))
	}
	if toTimestamp != nil {
		conditions = append(conditions, fmt.Sprintf(`{tx_: {timestamp_lte: %d}}`, *toTimestamp))
	}
	return conditions
}
