package mcp

const serverInstructions = `wanderlust runs a location-based scavenger hunt: Sessions → Landmarks → Experience.

Core concepts:
- Session: a themed hunt placed on the map with an ordered list of landmarks, an
  optional unique landmark, and a challenge countdown started on accept.
- Landmark: a place the player must physically reach. Discovery is ordered:
  landmark N+1 only unlocks after landmark N is decided.
- Unique landmark: a bonus target unlocked only when every landmark was found
  and the challenge countdown has time left at the final confirmation.
- Experience: 50 per found landmark, 250 for a fully-found session, 200 for a
  player-authored landmark. Level N needs 200*N experience.

Default workflow:
1) Orient: call list_sessions for the map markers, player_status for the player.
2) Start: accept_session. Track time and progress with session_status.
3) Hunt: call check_proximity with the player's position; inside 10 meters the
   landmark counts as reachable. Then confirm_landmark with found=true/false.
4) Finish: after the last landmark, complete_session; if the unique landmark
   unlocked, complete_unique_landmark instead ends the session.
5) Author: create_landmark adds a player landmark and grants experience.

Resume markers (set_resume_marker) record which popup was open so a restarted
client can return the player to it. recent_activity lists the gameplay log.`
