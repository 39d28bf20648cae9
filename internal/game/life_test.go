package game

import "testing"

func TestLifeResolved(t *testing.T) {
	tests := []struct {
		name    string
		life    Life
		loss    int
		current int
	}{
		{"damage", Life{Max: 3, Current: 3}, 2, 1},
		{"exact kill", Life{Max: 3, Current: 2}, 2, 0},
		{"overkill", Life{Max: 4, Current: 1}, 3, 0},
		{"no change", Life{Max: 4, Current: 2}, 0, 2},
		{"heal", Life{Max: 4, Current: 1}, -1, 2},
		{"heal capped at max", Life{Max: 3, Current: 3}, -1, 3},
		{"heal raised to floor", Life{Max: 9, Current: 1}, -1, 3},
		{"heal floor of lord", Life{Max: 8, Current: 1}, -1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.life.PrevisualiseLoss(tt.loss).Resolved()
			if got.Current != tt.current {
				t.Errorf("Expected %d life, got %d", tt.current, got.Current)
			}
			if got.PendingLoss != 0 {
				t.Errorf("Expected resolved life to carry no pending loss, got %d", got.PendingLoss)
			}
			if got.Max != tt.life.Max {
				t.Errorf("Expected max %d, got %d", tt.life.Max, got.Max)
			}
		})
	}
}

func TestPrevisualiseLossDoesNotChangeCurrent(t *testing.T) {
	l := NewLife(4)
	staged := l.PrevisualiseLoss(3)
	if staged.Current != 4 || staged.PendingLoss != 3 {
		t.Errorf("Unexpected staged life %+v", staged)
	}
	if staged.WouldDie() {
		t.Error("Expected 3 damage not to kill a 4 life unit")
	}
	if !l.PrevisualiseLoss(4).WouldDie() {
		t.Error("Expected 4 damage to kill a 4 life unit")
	}
}
