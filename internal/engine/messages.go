package engine

// MessageID identifies the presentation line the caller should show for the
// most recent step. The session also keeps a human-readable log with the
// computed numbers filled in.
type MessageID string

const (
	MsgNone          MessageID = ""
	MsgIntro         MessageID = "intro"
	MsgPlayerAttack  MessageID = "player_attack"
	MsgPlayerSpecial MessageID = "player_special"
	MsgPlayerGuard   MessageID = "player_guard"
	MsgPlayerItem    MessageID = "player_item"
	MsgPlayerStunned MessageID = "player_stunned"
	MsgPlayerPoison  MessageID = "player_poison"
	MsgFleeFailed    MessageID = "flee_failed"
	MsgFled          MessageID = "fled"
	MsgEnemyAttack   MessageID = "enemy_attack"
	MsgEnemySpecial  MessageID = "enemy_special"
	MsgEnemyGuard    MessageID = "enemy_guard"
	MsgEnemyStunned  MessageID = "enemy_stunned"
	MsgEnemyPoison   MessageID = "enemy_poison"
	MsgBossPowersUp  MessageID = "boss_powers_up"
	MsgBossCharge    MessageID = "boss_charge"
	MsgBossRelease   MessageID = "boss_release"
	MsgBossHeavy     MessageID = "boss_heavy"
	MsgBossMulti     MessageID = "boss_multi"
	MsgBossDrain     MessageID = "boss_drain"
	MsgBossInflict   MessageID = "boss_inflict"
	MsgBossRepair    MessageID = "boss_repair"
	MsgVictory       MessageID = "victory"
	MsgDefeat        MessageID = "defeat"
)
