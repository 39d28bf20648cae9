package game

import "testing"

func sameConsequences(a, b []Consequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPotentialTargets(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{26: UnitArcher, 29: UnitBarbarian})

	adjacent := PotentialTargets(AttackStickKnock, b, 0)
	if len(adjacent) != 3 {
		t.Errorf("Expected 3 adjacent targets from a corner, got %v", adjacent)
	}

	heal := PotentialTargets(AttackHeal, b, 0)
	if len(heal) != 4 || heal[3] != 0 {
		t.Errorf("Expected neighbors plus self for Heal, got %v", heal)
	}

	volley := PotentialTargets(AttackVolleyOfArrows, b, 26)
	if !containsCell(volley, 29) || containsCell(volley, 30) {
		t.Errorf("Expected the ray to stop on the first unit, got %v", volley)
	}
	// Right: 27 28 29, TopRight: 18 11 5 0 ... BottomRight: 35 43 50 56
	if !containsCell(volley, 56) || !containsCell(volley, 0) {
		t.Errorf("Expected the ray to reach the board edge, got %v", volley)
	}
}

func TestStickKnockUnobstructed(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{30: UnitScout, 31: UnitBarbarian})
	barbarian, _ := b.UnitAt(31)

	got := Consequences(AttackStickKnock, b, 30, 31)
	want := []Consequence{
		LifeChange(31, barbarian.Life.PrevisualiseLoss(1)),
		PushArrow(31, Right, false),
	}
	if !sameConsequences(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	res := Apply(b, got)
	if b.IsOccupied(31) {
		t.Error("Expected the barbarian to leave 31")
	}
	moved, ok := b.UnitAt(32)
	if !ok || moved.ID != barbarian.ID || moved.Life.Current != 2 {
		t.Errorf("Expected the barbarian on 32 with 2 life, got %+v (%t)", moved, ok)
	}
	if len(res.Moved) != 1 || res.Moved[0] != [2]CellID{31, 32} {
		t.Errorf("Unexpected moves %v", res.Moved)
	}
}

func TestStickKnockObstructed(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{30: UnitScout, 31: UnitBarbarian, 32: UnitArcher})
	barbarian, _ := b.UnitAt(31)
	archer, _ := b.UnitAt(32)

	got := Consequences(AttackStickKnock, b, 30, 31)
	want := []Consequence{
		LifeChange(31, barbarian.Life.PrevisualiseLoss(2)),
		LifeChange(32, archer.Life.PrevisualiseLoss(1)),
		PushArrow(31, Right, true),
	}
	if !sameConsequences(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	res := Apply(b, got)
	if len(res.Moved) != 0 || len(res.Killed) != 0 {
		t.Errorf("Expected nothing moved or killed, got %+v", res)
	}
	if u, _ := b.UnitAt(31); u.Life.Current != 1 {
		t.Errorf("Expected the barbarian at 1 life, got %d", u.Life.Current)
	}
	if u, _ := b.UnitAt(32); u.Life.Current != 1 {
		t.Errorf("Expected the archer at 1 life, got %d", u.Life.Current)
	}
}

func TestPushOffBoardStays(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{33: UnitScout, 34: UnitBarbarian})
	got := Consequences(AttackStickKnock, b, 33, 34)
	if len(got) != 2 || got[1] != PushArrow(34, Right, false) {
		t.Fatalf("Unexpected consequences %v", got)
	}
	Apply(b, got)
	if u, ok := b.UnitAt(34); !ok || u.Life.Current != 2 {
		t.Errorf("Expected the barbarian to stay on 34 with 2 life, got %+v (%t)", u, ok)
	}
}

func TestPushEmptyCell(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{30: UnitScout})
	got := Consequences(AttackStickKnock, b, 30, 31)
	want := []Consequence{PushArrow(31, Right, false)}
	if !sameConsequences(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if res := Apply(b, got); len(res.Moved) != 0 {
		t.Errorf("Expected nothing to move, got %v", res.Moved)
	}
}

func TestVolleyObstructedKills(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{26: UnitArcher, 29: UnitBarbarian, 30: UnitKnight})
	barbarian, _ := b.UnitAt(29)
	knight, _ := b.UnitAt(30)

	// Aiming at an empty cell of the ray hits the unit at its end.
	got := Consequences(AttackVolleyOfArrows, b, 26, 27)
	want := []Consequence{
		LifeChange(29, barbarian.Life.PrevisualiseLoss(3)),
		LifeChange(30, knight.Life.PrevisualiseLoss(1)),
		PushArrow(29, Right, true),
		LongDistanceShoot(26, 29),
	}
	if !sameConsequences(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	res := Apply(b, got)
	if len(res.Killed) != 1 || res.Killed[0].Cell != 29 || res.Killed[0].Unit.ID != barbarian.ID {
		t.Errorf("Expected the barbarian killed on 29, got %+v", res.Killed)
	}
	if b.IsOccupied(29) {
		t.Error("Expected 29 to be empty")
	}
	if u, _ := b.UnitAt(30); u.Life.Current != 3 {
		t.Errorf("Expected the knight at 3 life, got %d", u.Life.Current)
	}
	if !b.IsOccupied(26) {
		t.Error("Expected the archer to stay on 26")
	}
}

func TestOffensiveSwordPullsIntoAttacker(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{30: UnitKnight, 31: UnitBarbarian})
	barbarian, _ := b.UnitAt(31)
	knight, _ := b.UnitAt(30)

	got := Consequences(AttackOffensiveSwordFight, b, 30, 31)
	want := []Consequence{
		LifeChange(31, barbarian.Life.PrevisualiseLoss(3)),
		LifeChange(30, knight.Life.PrevisualiseLoss(1)),
		PushArrow(31, Left, true),
	}
	if !sameConsequences(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	res := Apply(b, got)
	if len(res.Killed) != 1 {
		t.Errorf("Expected one casualty, got %+v", res.Killed)
	}
	if u, _ := b.UnitAt(30); u.Life.Current != 3 {
		t.Errorf("Expected the knight at 3 life, got %d", u.Life.Current)
	}
}

func TestHeal(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{30: UnitScout, 31: UnitKnight})
	b.update(31, func(u *Unit) { u.Life.Current = 1 })

	got := Consequences(AttackHeal, b, 30, 31)
	if len(got) != 1 || got[0].Kind != ConsequenceLifeChange || got[0].Life.PendingLoss != -1 {
		t.Fatalf("Unexpected heal consequences %v", got)
	}
	Apply(b, got)
	if u, _ := b.UnitAt(31); u.Life.Current != 2 {
		t.Errorf("Expected the knight at 2 life, got %d", u.Life.Current)
	}

	if self := Consequences(AttackHeal, b, 30, 30); len(self) != 1 {
		t.Errorf("Expected a self heal, got %v", self)
	}
	if none := Consequences(AttackHeal, b, 30, 32); none != nil {
		t.Errorf("Expected no heal on a non adjacent cell, got %v", none)
	}
}

func TestApplyUsesCurrentOccupant(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{30: UnitScout, 31: UnitBarbarian})
	staged := Consequences(AttackStickKnock, b, 30, 31)

	// The barbarian leaves before the staged list is applied.
	if err := b.Move(31, 40); err != nil {
		t.Fatal(err)
	}
	res := Apply(b, staged)
	if len(res.Moved) != 0 || len(res.Killed) != 0 {
		t.Errorf("Expected a vacated cell to be skipped, got %+v", res)
	}
	if u, _ := b.UnitAt(40); u.Life.Current != 3 {
		t.Errorf("Expected the barbarian untouched, got %d life", u.Life.Current)
	}
}

func TestAttackMetadata(t *testing.T) {
	if AttackVolleyOfArrows.Name() != "Volley of Arrows" {
		t.Errorf("Unexpected name %q", AttackVolleyOfArrows.Name())
	}
	if AttackHeal.Description() == "" {
		t.Error("Expected a description for Heal")
	}
	if !AttackHeal.UsableBy(UnitScout) || AttackHeal.UsableBy(UnitKnight) {
		t.Error("Expected Heal to be usable by the Scout only")
	}
}

func TestDefensiveSwordFight(t *testing.T) {
	tests := []struct {
		name      string
		units     map[CellID]UnitType
		want      func(b *Board) []Consequence
		targetEnd CellID
		life      int
	}{
		{
			name:  "free",
			units: map[CellID]UnitType{30: UnitKnight, 31: UnitBarbarian},
			want: func(b *Board) []Consequence {
				u, _ := b.UnitAt(31)
				return []Consequence{
					LifeChange(31, u.Life.PrevisualiseLoss(2)),
					PushArrow(31, Right, false),
				}
			},
			targetEnd: 32,
			life:      1,
		},
		{
			name:  "blocked",
			units: map[CellID]UnitType{30: UnitKnight, 31: UnitBarbarianLordOfDeath, 32: UnitBarbarian},
			want: func(b *Board) []Consequence {
				u, _ := b.UnitAt(31)
				blocker, _ := b.UnitAt(32)
				return []Consequence{
					LifeChange(31, u.Life.PrevisualiseLoss(3)),
					LifeChange(32, blocker.Life.PrevisualiseLoss(1)),
					PushArrow(31, Right, true),
				}
			},
			targetEnd: 31,
			life:      5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.units)
			target, _ := b.UnitAt(31)
			got := Consequences(AttackDefensiveSwordFight, b, 30, 31)
			if want := tt.want(b); !sameConsequences(got, want) {
				t.Fatalf("Expected %v, got %v", want, got)
			}

			Apply(b, got)
			u, ok := b.UnitAt(tt.targetEnd)
			if !ok || u.ID != target.ID || u.Life.Current != tt.life {
				t.Errorf("Expected the target on %s with %d life, got %+v (%t)", tt.targetEnd, tt.life, u, ok)
			}
		})
	}
}

func TestVolleyUnobstructed(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{26: UnitArcher, 29: UnitBarbarian})
	barbarian, _ := b.UnitAt(29)

	got := Consequences(AttackVolleyOfArrows, b, 26, 28)
	want := []Consequence{
		LifeChange(29, barbarian.Life.PrevisualiseLoss(2)),
		PushArrow(29, Right, false),
		LongDistanceShoot(26, 29),
	}
	if !sameConsequences(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	Apply(b, got)
	if b.IsOccupied(29) {
		t.Error("Expected the barbarian to leave 29")
	}
	u, ok := b.UnitAt(30)
	if !ok || u.ID != barbarian.ID || u.Life.Current != 1 {
		t.Errorf("Expected the barbarian on 30 with 1 life, got %+v (%t)", u, ok)
	}
}

func TestVolleyIntoEmptyEdgeOnlyShoots(t *testing.T) {
	b := newTestBoard(t, map[CellID]UnitType{26: UnitArcher})

	got := Consequences(AttackVolleyOfArrows, b, 26, 0)
	want := []Consequence{LongDistanceShoot(26, 0)}
	if !sameConsequences(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
