package combat

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/solfarer/last-voyage/internal/config"
	"github.com/solfarer/last-voyage/internal/crew"
	"github.com/solfarer/last-voyage/internal/research"
	"github.com/solfarer/last-voyage/internal/resource"
	"github.com/solfarer/last-voyage/internal/rng"
)

// Action is a combat turn choice.
type Action string

const (
	Attack  Action = "attack"
	Defend  Action = "defend"
	Evade   Action = "evade"
	Special Action = "special"
)

const (
	basePlayerHull    = 100
	basePlayerShields = 50
	basePlayerWeapons = 20
)

// Session is one live combat. It survives save/load mid-fight.
type Session struct {
	Enemy            *Enemy   `json:"enemy"`
	Turn             int      `json:"turn"`
	PlayerHull       int      `json:"player_hull"`
	PlayerMaxHull    int      `json:"player_max_hull"`
	PlayerShields    int      `json:"player_shields"`
	PlayerMaxShields int      `json:"player_max_shields"`
	PlayerWeapons    int      `json:"player_weapons"`
	Log              []string `json:"log"`
}

func (s *Session) logf(format string, args ...any) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
}

// Resolver owns the current combat session and applies its consequences to
// the ledger and crew.
type Resolver struct {
	cfg     config.CombatTuning
	session *Session
}

func NewResolver(cfg config.CombatTuning) *Resolver {
	return &Resolver{cfg: cfg}
}

// InCombat reports whether a session is live.
func (r *Resolver) InCombat() bool { return r.session != nil }

// Session returns the live session, nil outside combat.
func (r *Resolver) Session() *Session { return r.session }

// Start opens a combat session against the given enemy type. Player stats
// come from the base loadout scaled by research multipliers, floored.
func (r *Resolver) Start(t EnemyType, lab *research.Lab) *Session {
	enemy, ok := NewEnemy(t)
	if !ok {
		slog.Error("unknown enemy type", "type", t)
		return nil
	}

	hull := int(math.Floor(basePlayerHull * lab.Bonus(research.HullCapacity)))
	shields := int(math.Floor(basePlayerShields * lab.Bonus(research.ShieldCapacity)))
	weapons := int(math.Floor(basePlayerWeapons * lab.Bonus(research.WeaponDamage)))

	r.session = &Session{
		Enemy: enemy, Turn: 1,
		PlayerHull: hull, PlayerMaxHull: hull,
		PlayerShields: shields, PlayerMaxShields: shields,
		PlayerWeapons: weapons,
	}
	r.session.logf("Encountered %s!", enemy.Name)
	r.session.logf("%s", Templates[t].Description)
	return r.session
}

// TurnResult reports one resolved combat turn. Outcome is non-nil when the
// fight ended this turn.
type TurnResult struct {
	Ongoing      bool     `json:"ongoing"`
	PlayerAction Action   `json:"player_action"`
	EnemyAction  Action   `json:"enemy_action"`
	DamageDealt  int      `json:"damage_dealt"`
	DamageTaken  int      `json:"damage_taken"`
	Outcome      *Outcome `json:"outcome,omitempty"`
}

// ExecuteTurn resolves one exchange. The player action lands first; a
// defending player skips the enemy attack entirely while regenerating
// shields.
func (r *Resolver) ExecuteTurn(action Action, res *resource.Ledger, roster *crew.Roster, src rng.Source) *TurnResult {
	if r.session == nil {
		return nil
	}
	s := r.session
	enemy := s.Enemy
	enemyAction := enemy.ChooseAction(r.cfg, src)

	var playerDamage, enemyDamage int
	playerEvaded := false
	enemyEvaded := false

	switch action {
	case Attack:
		base := s.PlayerWeapons + src.IntN(10)
		base = int(math.Floor(float64(base) * (1 + roster.SkillBonus(crew.Security))))

		switch enemyAction {
		case Evade:
			if src.Float64() < enemy.Evasion {
				enemyEvaded = true
				s.logf("%s evaded your attack!", enemy.Name)
			} else {
				enemyDamage = base
			}
		case Defend:
			enemyDamage = base / 2
			enemy.RegenerateShields(int(r.cfg.EnemyDefendRegen))
		default:
			enemyDamage = base
		}

	case Defend:
		regen := int(r.cfg.PlayerDefendRegen)
		s.PlayerShields = min(s.PlayerMaxShields, s.PlayerShields+regen)
		s.logf("Shields regenerating... +%d shields", regen)

	case Evade:
		playerEvaded = src.Float64() < r.cfg.PlayerEvadeChance

	case Special:
		fuelCost := r.cfg.SpecialFuelCost
		if res.Get(resource.Fuel) >= fuelCost {
			res.Modify(resource.Fuel, -fuelCost)
			enemyDamage = s.PlayerWeapons * 2
			s.logf("Overcharged weapons! -%d fuel", int(fuelCost))
		} else {
			s.logf("Not enough fuel for special attack!")
			enemyDamage = s.PlayerWeapons
		}
	}

	if enemyAction == Attack && action != Defend {
		if playerEvaded {
			s.logf("You evaded the enemy attack!")
		} else {
			playerDamage = enemy.Weapons + src.IntN(10)
			playerDamage = roster.ApplyEffects(crew.ShipDamage, playerDamage)
		}
	} else if enemyAction == Defend {
		enemy.RegenerateShields(int(r.cfg.EnemyDefendRegen))
	}

	result := &TurnResult{
		Ongoing: true, PlayerAction: action, EnemyAction: enemyAction,
	}

	if enemyDamage > 0 && !enemyEvaded {
		destroyed := enemy.TakeDamage(enemyDamage)
		s.logf("You dealt %d damage to %s!", enemyDamage, enemy.Name)
		result.DamageDealt = enemyDamage
		if destroyed {
			result.Ongoing = false
			result.Outcome = r.End(true, res, roster, src)
			return result
		}
	}

	if playerDamage > 0 {
		if s.PlayerShields > 0 {
			absorbed := min(s.PlayerShields, playerDamage)
			s.PlayerShields -= absorbed
			playerDamage -= absorbed
			s.logf("Shields absorbed %d damage!", absorbed)
		}
		if playerDamage > 0 {
			s.PlayerHull -= playerDamage
			s.logf("Hull damaged! -%d HP", playerDamage)
			result.DamageTaken = playerDamage
			roster.ModifyAllMorale(-2, "Ship damage")
			if s.PlayerHull <= 0 {
				result.Ongoing = false
				result.Outcome = r.End(false, res, roster, src)
				return result
			}
		}
	}

	s.logf("%s: %d/%d HP, %d shields", enemy.Name, enemy.Hull, enemy.MaxHull, enemy.Shields)
	s.Turn++
	return result
}

// Outcome summarizes a finished combat.
type Outcome struct {
	Victory      bool                  `json:"victory"`
	Turns        int                   `json:"turns"`
	HullDamage   int                   `json:"hull_damage"`
	ShieldDamage int                   `json:"shield_damage"`
	Loot         map[resource.Kind]int `json:"loot,omitempty"`
	InjuredCrew  string                `json:"injured_crew,omitempty"`
	Log          []string              `json:"log"`
}

// End closes the session with loot on victory or penalties on defeat.
func (r *Resolver) End(victory bool, res *resource.Ledger, roster *crew.Roster, src rng.Source) *Outcome {
	if r.session == nil {
		return nil
	}
	s := r.session
	enemy := s.Enemy

	out := &Outcome{
		Victory:      victory,
		Turns:        s.Turn,
		HullDamage:   s.PlayerMaxHull - s.PlayerHull,
		ShieldDamage: s.PlayerMaxShields - s.PlayerShields,
		Loot:         make(map[resource.Kind]int),
	}

	if victory {
		s.logf("%s destroyed!", enemy.Name)
		loot := Templates[enemy.Type].Loot
		for _, kind := range lootOrder {
			band, ok := loot[kind]
			if !ok {
				continue
			}
			amount := band.Min
			if band.Max > band.Min {
				amount += src.IntN(band.Max - band.Min)
			}
			if amount > 0 {
				res.Modify(kind, float64(amount))
				out.Loot[kind] = amount
				s.logf("Salvaged: +%d %s", amount, kind)
			}
		}
		roster.ModifyAllMorale(10, "Victory in combat")
	} else {
		s.logf("Ship critical! Emergency retreat!")
		res.Modify(resource.Materials, -20)
		res.Modify(resource.Fuel, -10)
		roster.ModifyAllMorale(-15, "Defeat in combat")

		living := roster.Living()
		if len(living) > 0 && src.Float64() < r.cfg.DefeatInjuryChance {
			injured := living[src.IntN(len(living))]
			injured.ModifyHealth(-30, "Combat injury")
			s.logf("%s was injured in the battle!", injured.Name)
			out.InjuredCrew = injured.Name
		}
	}

	out.Log = s.Log
	r.session = nil
	slog.Info("combat ended", "victory", victory, "turns", out.Turns)
	return out
}

// FleeResult reports a flee attempt. On failure the enemy lands a free hit
// straight to the hull and combat continues unless that hit destroys the
// ship.
type FleeResult struct {
	Fled        bool     `json:"fled"`
	Ongoing     bool     `json:"ongoing"`
	DamageTaken int      `json:"damage_taken,omitempty"`
	Outcome     *Outcome `json:"outcome,omitempty"`
}

// AttemptFlee rolls against the base chance plus the pilot's skill bonus.
func (r *Resolver) AttemptFlee(res *resource.Ledger, roster *crew.Roster, src rng.Source) *FleeResult {
	if r.session == nil {
		return nil
	}
	s := r.session

	chance := r.cfg.FleeBaseChance + roster.SkillBonus(crew.Pilot)
	if src.Float64() < chance {
		s.logf("Successfully fled from combat!")
		res.Modify(resource.Fuel, -r.cfg.FleeFuelCost)
		roster.ModifyAllMorale(-5, "Fled from combat")
		r.session = nil
		return &FleeResult{Fled: true}
	}

	s.logf("Failed to flee! Enemy blocks escape route!")
	damage := s.Enemy.Weapons
	s.PlayerHull -= damage
	s.logf("Took %d damage while trying to flee!", damage)

	result := &FleeResult{Ongoing: true, DamageTaken: damage}
	if s.PlayerHull <= 0 {
		result.Ongoing = false
		result.Outcome = r.End(false, res, roster, src)
	}
	return result
}

// Snapshot captures the live session, nil when out of combat.
func (r *Resolver) Snapshot() *Session {
	if r.session == nil {
		return nil
	}
	cp := *r.session
	enemy := *r.session.Enemy
	cp.Enemy = &enemy
	cp.Log = append([]string(nil), r.session.Log...)
	return &cp
}

// Restore resumes a saved session.
func (r *Resolver) Restore(s *Session) {
	if s == nil {
		r.session = nil
		return
	}
	cp := *s
	enemy := *s.Enemy
	cp.Enemy = &enemy
	cp.Log = append([]string(nil), s.Log...)
	r.session = &cp
}
