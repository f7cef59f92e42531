package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cloverfield-server/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadReplay(bufio.NewReader(f))
}

// maxPrealloc - сколько записей резервируем заранее
const maxPrealloc = 1024

// ReadReplay декодирует сессию из бинарного формата
func ReadReplay(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.ActionCount < 0 || header.TickMillis <= 0 {
		return nil, fmt.Errorf("corrupted header: actions=%d tick=%dms", header.ActionCount, header.TickMillis)
	}

	session := &domain.ReplaySession{
		Seed:       header.Seed,
		Timestamp:  header.Timestamp,
		TickMillis: int(header.TickMillis),
		TotalTicks: int(header.TotalTicks),
		// Счетчику из заголовка не доверяем: память растет по мере чтения записей
		Actions: make([]domain.ReplayAction, 0, min(int(header.ActionCount), maxPrealloc)),
	}

	// 2. Читаем Actions
	for i := 0; i < int(header.ActionCount); i++ {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, fmt.Errorf("failed to read action %d: %w", i, err)
		}

		act := domain.ReplayAction{
			Tick:   int(ah.Tick),
			Action: domain.ActionType(ah.ActionType),
		}

		if ah.PayloadLen > 0 {
			act.Payload = make([]byte, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, fmt.Errorf("failed to read action %d payload: %w", i, err)
			}
		} else {
			act.Payload = json.RawMessage{}
		}

		session.Actions = append(session.Actions, act)
	}

	return session, nil
}
